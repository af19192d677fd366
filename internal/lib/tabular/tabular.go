// Package tabular читает и пишет табличные файлы массового импорта/экспорта.
//
// Encode сериализует набор записей в текст с разделителями-запятыми:
// первая строка — имена полей, строковые значения всегда берутся в кавычки
// (кавычка внутри удваивается), числа и логические значения пишутся как есть.
// Decode-функции разбирают загруженный .csv или .xlsx файл в последовательность
// отображений "имя колонки — значение" по заголовочной строке.
package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Encode сериализует строки rows с заголовком headers в CSV-текст.
// Пустой набор строк даёт пустую строку. Порядок колонок задаётся headers.
func Encode(headers []string, rows [][]any) string {
	if len(rows) == 0 {
		return ""
	}
	out := make([]string, 0, len(rows)+1)
	out = append(out, strings.Join(headers, ","))
	for _, row := range rows {
		fields := make([]string, 0, len(row))
		for _, v := range row {
			fields = append(fields, encodeValue(v))
		}
		out = append(out, strings.Join(fields, ","))
	}
	return strings.Join(out, "\n")
}

// encodeValue приводит значение к CSV-полю: строки в кавычках
// с удвоением внутренних кавычек, остальные типы без кавычек.
func encodeValue(v any) string {
	switch val := v.(type) {
	case string:
		return `"` + strings.ReplaceAll(val, `"`, `""`) + `"`
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}

// DecodeCSV разбирает CSV-поток с заголовочной строкой в последовательность
// отображений колонка→значение. Ключи приводятся к нижнему регистру.
func DecodeCSV(r io.Reader) ([]map[string]string, error) {
	const op = "tabular.DecodeCSV"
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []map[string]string
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, rowToMap(header, record))
	}
	return result, nil
}

// DecodeXLSX разбирает первый лист xlsx-файла в последовательность
// отображений колонка→значение по первой (заголовочной) строке.
func DecodeXLSX(r io.Reader) ([]map[string]string, error) {
	const op = "tabular.DecodeXLSX"
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: workbook has no sheets", op)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	header := rows[0]
	var result []map[string]string
	for _, record := range rows[1:] {
		result = append(result, rowToMap(header, record))
	}
	return result, nil
}

func rowToMap(header, record []string) map[string]string {
	m := make(map[string]string, len(header))
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if i < len(record) {
			m[key] = strings.TrimSpace(record[i])
		} else {
			m[key] = ""
		}
	}
	return m
}
