package tracking

import (
	"time"

	tabledomain "github.com/vfg2006/retail-analytics-api/infrastructure/integrator/tablestore/domain"
	"github.com/vfg2006/retail-analytics-api/internal/domain"
)

func itemFromQRCode(qrCode *domain.QRCode) tabledomain.Item {
	return tabledomain.Item{
		"short_code":   qrCode.ShortCode,
		"name":         qrCode.Name,
		"target_url":   qrCode.TargetURL,
		"store_id":     string(qrCode.StoreID),
		"total_clicks": float64(qrCode.TotalClicks),
		"deleted":      qrCode.Deleted,
		"created_at":   qrCode.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func qrCodeFromItem(item tabledomain.Item) *domain.QRCode {
	createdAt, _ := time.Parse(time.RFC3339, item.String("created_at"))

	return &domain.QRCode{
		ShortCode:   item.String("short_code"),
		Name:        item.String("name"),
		TargetURL:   item.String("target_url"),
		StoreID:     domain.StoreID(item.String("store_id")),
		TotalClicks: int(item.Number("total_clicks")),
		Deleted:     item.Bool("deleted"),
		CreatedAt:   createdAt,
	}
}

func itemFromClick(click *domain.QRClick) tabledomain.Item {
	return tabledomain.Item{
		"short_code": click.ShortCode,
		"timestamp":  click.Timestamp.UTC().Format(time.RFC3339),
		"ip_address": click.IPAddress,
		"user_agent": click.UserAgent,
		"referer":    click.Referer,
	}
}
