package domain

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// ErrReportNotFound is returned when a report id does not resolve to a
// stored record.
var ErrReportNotFound = errors.New("report not found")

// PublishService marks reports as publicized and fans the notification out
// to every registered device.
type PublishService struct {
	store  Store
	push   PushSender
	logger *zap.Logger
}

func NewPublishService(store Store, push PushSender, logger *zap.Logger) *PublishService {
	return &PublishService{
		store:  store,
		push:   push,
		logger: logger,
	}
}

// Publicize flips the publicized flag on the report and sends one push
// notification per user with a registered token.
//
// The flag write happens before the existence check, matching the behavior
// clients already depend on: publicizing an unknown id still leaves a
// publicized marker at that path. Individual delivery failures are logged
// and do not abort the fan-out; store failures abort the whole operation.
func (s *PublishService) Publicize(ctx context.Context, reportID string) error {
	if err := s.store.MarkPublicized(ctx, reportID); err != nil {
		return err
	}

	report, err := s.store.Report(ctx, reportID)
	if err != nil {
		return err
	}
	if report == nil {
		return ErrReportNotFound
	}

	body := report.NotificationBody()
	location := DescribeLocation(report.LocationType, report.Location)

	users, err := s.store.Users(ctx)
	if err != nil {
		return err
	}

	payload := map[string]string{
		"reportId":  reportID,
		"location":  location,
		"timestamp": report.TimestampString(),
	}

	sent, failed := 0, 0
	for uid, user := range users {
		if user.FCMToken == "" {
			continue
		}
		if err := s.push.Send(ctx, user.FCMToken, NotificationTitle, body, payload); err != nil {
			failed++
			s.logger.Warn("push delivery failed",
				zap.String("report_id", reportID),
				zap.String("uid", uid),
				zap.Error(err),
			)
			continue
		}
		sent++
	}

	s.logger.Info("report publicized",
		zap.String("report_id", reportID),
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)
	return nil
}
