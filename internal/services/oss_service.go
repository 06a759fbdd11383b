package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"gymdesk-backend/config"
	"gymdesk-backend/internal/models"
	"gymdesk-backend/pkg/logger"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InvoiceArchiver stores a rendered document and returns its URL.
type InvoiceArchiver interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

// OSSArchiver archives documents to an Aliyun OSS bucket.
type OSSArchiver struct {
	bucket     *oss.Bucket
	endpoint   string
	bucketName string
}

func NewOSSArchiver(cfg *config.Config) (*OSSArchiver, error) {
	client, err := oss.New(cfg.OSSEndpoint, cfg.OSSAccessKeyID, cfg.OSSAccessKeySecret,
		oss.Timeout(60, 120), // connect 60s, read/write 120s
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OSS client: %w", err)
	}
	bucket, err := client.Bucket(cfg.OSSBucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket: %w", err)
	}
	return &OSSArchiver{bucket: bucket, endpoint: cfg.OSSEndpoint, bucketName: cfg.OSSBucketName}, nil
}

func (a *OSSArchiver) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := a.bucket.PutObject(key, bytes.NewReader(data), oss.ContentType(contentType), oss.WithContext(ctx)); err != nil {
		return "", fmt.Errorf("upload %s failed: %w", key, err)
	}
	return objectURL(a.endpoint, a.bucketName, key), nil
}

// objectURL builds the virtual-hosted URL https://<bucket>.<endpoint>/<key>.
func objectURL(endpoint, bucket, key string) string {
	scheme := "https"
	if parts := strings.SplitN(endpoint, "://", 2); len(parts) == 2 {
		scheme, endpoint = parts[0], parts[1]
	}
	return fmt.Sprintf("%s://%s.%s/%s", scheme, bucket, strings.TrimSuffix(endpoint, "/"), key)
}

// InvoiceObjectKey is invoices/<yyyy>/<mm>/<serial>-<uuid>.pdf.
func InvoiceObjectKey(m models.Member, now time.Time) string {
	return fmt.Sprintf("invoices/%d/%02d/%d-%s.pdf", now.Year(), now.Month(), m.SerialNumber, uuid.New().String())
}

var (
	archiverMu      sync.RWMutex
	invoiceArchiver InvoiceArchiver
)

func SetInvoiceArchiver(a InvoiceArchiver) {
	archiverMu.Lock()
	defer archiverMu.Unlock()
	invoiceArchiver = a
}

func currentArchiver() InvoiceArchiver {
	archiverMu.RLock()
	defer archiverMu.RUnlock()
	return invoiceArchiver
}

// ArchiveInvoice renders the member's invoice and stores it, returning the
// object URL.
func ArchiveInvoice(ctx context.Context, id uint) (string, error) {
	archiver := currentArchiver()
	if archiver == nil {
		return "", ErrArchiveNotConfigured
	}

	member, err := GetMember(ctx, id)
	if err != nil {
		return "", err
	}

	now := Now()
	pdf, err := GenerateInvoicePDF(member, now)
	if err != nil {
		return "", err
	}

	key := InvoiceObjectKey(member, now)
	url, err := archiver.Put(ctx, key, pdf, "application/pdf")
	if err != nil {
		logger.L().Error("Invoice archive failed", zap.Uint("member_id", id), zap.String("key", key), zap.Error(err))
		return "", err
	}

	logger.L().Info("Invoice archived", zap.Uint("member_id", id), zap.String("key", key))
	return url, nil
}
