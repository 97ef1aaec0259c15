package inquiry

import (
	"database/sql"
	"time"

	"go.uber.org/zap"

	"pasteleria/internal/inquiry/controller"
	"pasteleria/internal/inquiry/repository"
	"pasteleria/internal/inquiry/service"
	"pasteleria/internal/notification"
)

func NewModule(db *sql.DB, notifier notification.Notifier, logger *zap.Logger) *controller.InquiryController {
	repo := repository.NewSQLInquiryRepository(db)
	svc := service.NewInquiryService(repo, notifier, time.Now, logger)
	return controller.NewInquiryController(svc, logger)
}
