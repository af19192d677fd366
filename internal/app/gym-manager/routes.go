// Package gymmanager собирает HTTP-приложение: сервисы, маршруты и сервер.
package gymmanager

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ironman-fitness/gym-manager/internal/http/handlers/admin/exportdata"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/admin/importusers"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/auth/login"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/auth/register"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/equipment/equipmentcreate"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/equipment/equipmentlist"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/equipment/equipmentremove"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/equipment/equipmentupdate"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/health"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/member/membercreate"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/member/memberlist"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/member/memberread"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/member/memberremove"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/member/memberupdate"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/notification/notificationlist"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/payment/paymentcreate"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/payment/paymentlist"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/plan/plancreate"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/plan/planlist"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/plan/planremove"
	"github.com/ironman-fitness/gym-manager/internal/http/handlers/plan/planupdate"
	"github.com/ironman-fitness/gym-manager/internal/http/middlewarectx"
	"github.com/ironman-fitness/gym-manager/internal/lib/jwt"
	"github.com/ironman-fitness/gym-manager/internal/models"
	authservice "github.com/ironman-fitness/gym-manager/internal/services/auth"
	equipmentservice "github.com/ironman-fitness/gym-manager/internal/services/equipment"
	exporterservice "github.com/ironman-fitness/gym-manager/internal/services/exporter"
	importerservice "github.com/ironman-fitness/gym-manager/internal/services/importer"
	memberservice "github.com/ironman-fitness/gym-manager/internal/services/member"
	notificationservice "github.com/ironman-fitness/gym-manager/internal/services/notification"
	paymentservice "github.com/ironman-fitness/gym-manager/internal/services/payment"
	planservice "github.com/ironman-fitness/gym-manager/internal/services/plan"
)

// Services собирает бизнес-сервисы, необходимые маршрутам приложения.
type Services struct {
	Auth          *authservice.AuthService
	Members       *memberservice.MemberService
	Plans         *planservice.PlanService
	Equipment     *equipmentservice.EquipmentService
	Payments      *paymentservice.PaymentService
	Notifications *notificationservice.NotificationService
	Importer      *importerservice.ImportService
	Exporter      *exporterservice.ExportService
}

// RegisterRoutes регистрирует все маршруты приложения.
// Доступ к группам маршрутов ограничивается ролью из JWT.
func RegisterRoutes(r chi.Router, logger *slog.Logger, jwtMaker jwt.Maker, s *Services) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	staffOrAdmin := middlewarectx.RequireRole(logger, models.RoleStaff, models.RoleAdmin)
	adminOnly := middlewarectx.RequireRole(logger, models.RoleAdmin)

	r.Route("/api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/register", register.New(logger, s.Auth).ServeHTTP)
		r.Post("/login", login.New(logger, s.Auth).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))

			// Участники: просмотр и добавление доступны персоналу,
			// изменение и удаление — только администратору.
			r.Group(func(r chi.Router) {
				r.Use(staffOrAdmin)
				r.Get("/members", memberlist.New(logger, s.Members).ServeHTTP)
				r.Post("/members", membercreate.New(logger, s.Members).ServeHTTP)
				r.Get("/members/{id}", memberread.New(logger, s.Members, s.Payments).ServeHTTP)
			})
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Put("/members/{id}", memberupdate.New(logger, s.Members).ServeHTTP)
				r.Delete("/members/{id}", memberremove.New(logger, s.Members).ServeHTTP)
			})

			// Планы: список виден всем ролям, изменения — администратору.
			r.Get("/plans", planlist.New(logger, s.Plans).ServeHTTP)
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/plans", plancreate.New(logger, s.Plans).ServeHTTP)
				r.Put("/plans/{id}", planupdate.New(logger, s.Plans).ServeHTTP)
				r.Delete("/plans/{id}", planremove.New(logger, s.Plans).ServeHTTP)
			})

			// Инвентарь: список виден всем ролям.
			r.Get("/equipment", equipmentlist.New(logger, s.Equipment).ServeHTTP)
			r.Group(func(r chi.Router) {
				r.Use(staffOrAdmin)
				r.Post("/equipment", equipmentcreate.New(logger, s.Equipment).ServeHTTP)
				r.Put("/equipment/{id}", equipmentupdate.New(logger, s.Equipment).ServeHTTP)
			})
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Delete("/equipment/{id}", equipmentremove.New(logger, s.Equipment).ServeHTTP)
			})

			// Платежи и напоминания.
			r.Group(func(r chi.Router) {
				r.Use(staffOrAdmin)
				r.Get("/payments", paymentlist.New(logger, s.Payments).ServeHTTP)
				r.Post("/payments", paymentcreate.New(logger, s.Payments).ServeHTTP)
				r.Get("/notifications", notificationlist.New(logger, s.Notifications).ServeHTTP)
			})

			// Администрирование: импорт и экспорт данных.
			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/admin/import/users", importusers.New(logger, s.Importer).ServeHTTP)
				r.Get("/admin/export/{table}", exportdata.New(logger, s.Exporter).ServeHTTP)
			})
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
	r.Get("/health", health.New(logger).ServeHTTP)
}
