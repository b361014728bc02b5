package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/mamadbah2/toratita/internal/config"
	"github.com/mamadbah2/toratita/internal/domain/models"
	"github.com/mamadbah2/toratita/internal/repository/mongodb"
	client "github.com/mamadbah2/toratita/pkg/clients/whatsapp"
)

// sendTimeout bounds each outbound message, including the seller lookup.
const sendTimeout = 30 * time.Second

// SellerStore is the slice of the record store the notify service consumes.
type SellerStore interface {
	GetSeller(ctx context.Context, id primitive.ObjectID) (*models.Seller, error)
}

// Service pushes WhatsApp texts for recorded events. Every method is a
// no-op when messaging is not configured, so callers never need to guard.
type Service struct {
	cfg    config.WhatsAppConfig
	client client.Client
	store  SellerStore
	logger *zap.Logger
}

// NewService wires a new notification service instance.
func NewService(cfg config.WhatsAppConfig, whatsClient client.Client, store SellerStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, client: whatsClient, store: store, logger: logger}
}

// DistributionRecorded messages the referenced seller about the batch they
// just received. The send runs detached from the request that triggered it
// and never surfaces an error to the caller.
func (s *Service) DistributionRecorded(d *models.Distribution) {
	if !s.cfg.Enabled() || d == nil || d.SellerID == nil {
		return
	}

	dist := *d
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		if err := s.sendDistributionAlert(ctx, dist); err != nil {
			s.logger.Warn("failed sending distribution alert",
				zap.String("seller_id", dist.SellerID.Hex()),
				zap.Error(err))
		}
	}()
}

func (s *Service) sendDistributionAlert(ctx context.Context, d models.Distribution) error {
	seller, err := s.store.GetSeller(ctx, *d.SellerID)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			// Dangling reference, nothing to notify.
			return nil
		}
		return fmt.Errorf("load seller: %w", err)
	}
	if seller.Phone == "" {
		return nil
	}

	body := fmt.Sprintf(
		"Hola %s! Se te envió pan: %d grandes, %d pequeños. Valor total: %.2f.",
		seller.Name, d.PanGrandeSent, d.PanPequenoSent, d.TotalValue,
	)

	_, err = s.client.SendTextMessage(ctx, client.SendTextMessageRequest{
		To:   seller.Phone,
		Body: body,
	})
	return err
}

// SendOwnerSummary pushes a text to the configured owner number, typically
// the scheduled weekly summary.
func (s *Service) SendOwnerSummary(ctx context.Context, text string) error {
	if !s.cfg.Enabled() || s.cfg.OwnerNumber == "" {
		return nil
	}

	_, err := s.client.SendTextMessage(ctx, client.SendTextMessageRequest{
		To:   s.cfg.OwnerNumber,
		Body: text,
	})
	if err != nil {
		return fmt.Errorf("send owner summary: %w", err)
	}
	return nil
}
