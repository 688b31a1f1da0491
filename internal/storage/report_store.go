package storage

import "context"

// ReportStore is the narrow contract for mirroring session bodies to object
// storage. Upload is called once, after a session is persisted, never on
// update; a failed upload is absorbed by the caller and the session is kept
// without a report URL. Delete exists for symmetry and is not wired into the
// session delete path.
type ReportStore interface {
	Upload(ctx context.Context, sessionID, content, ownerHandle string) (string, error)
	Delete(ctx context.Context, reportURL string) error
}
