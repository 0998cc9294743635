// api/dao/common.go
package dao

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/solistore/gateway/api/audit"
	logger "github.com/solistore/gateway/api/logging"
)

// recordAudit writes a change entry to the audit trail. The trail is best
// effort: a failed write is logged and the operation proceeds.
func recordAudit(ctx context.Context, svc audit.Service, action, resourceType string, resourceID uint, details any) {
	if svc == nil {
		return
	}
	var raw json.RawMessage
	if details != nil {
		if encoded, err := json.Marshal(details); err == nil {
			raw = encoded
		}
	}
	entry := audit.AuditLog{
		Timestamp:    time.Now(),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   fmt.Sprintf("%d", resourceID),
		Success:      true,
		Details:      raw,
	}
	if err := svc.Record(ctx, entry); err != nil {
		logger.Warn("Failed to record audit entry",
			zap.Error(err),
			zap.String("action", action),
			zap.String("resourceType", resourceType))
	}
}
