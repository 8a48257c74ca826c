package repository

import (
	"context"
	"sync"

	authDomain "github.com/slalombuild/capabilities/internal/auth/domain"
)

// MemoryAuditLogRepository implements append-only AuditLog storage over a
// slice. Insertion order is chronological order; entries are never mutated
// or deleted.
type MemoryAuditLogRepository struct {
	mu   sync.RWMutex
	logs []*authDomain.AuditLog
}

// Create appends a new audit log entry.
func (m *MemoryAuditLogRepository) Create(ctx context.Context, auditLog *authDomain.AuditLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *auditLog
	m.logs = append(m.logs, &copied)
	return nil
}

// List retrieves audit log entries in append (chronological) order. Offset
// skips that many entries from the start; a limit of 0 means no cap. Returns
// an empty slice when the window falls outside the stored entries.
func (m *MemoryAuditLogRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*authDomain.AuditLog, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Initialize empty slice to avoid returning nil for empty results
	auditLogs := make([]*authDomain.AuditLog, 0)

	if offset >= len(m.logs) {
		return auditLogs, nil
	}

	end := len(m.logs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	for _, log := range m.logs[offset:end] {
		copied := *log
		auditLogs = append(auditLogs, &copied)
	}

	return auditLogs, nil
}

// NewMemoryAuditLogRepository creates an empty audit log repository.
func NewMemoryAuditLogRepository() *MemoryAuditLogRepository {
	return &MemoryAuditLogRepository{}
}
