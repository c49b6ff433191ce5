package storage

import "context"

// Upload presets. A preset names the key prefix the object is stored
// under, matching how the media dashboard organizes assets.
const (
	PresetDefault        = "default"
	PresetAuthorPhoto    = "author-photo"
	PresetArticleCaption = "article-caption"
)

// MediaRef is the stable reference to an uploaded object: the opaque
// id used for deletion and the public URL stored on the owning record.
type MediaRef struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// MediaStore uploads and deletes binary media objects. Delete is
// best-effort: implementations log failures instead of surfacing them.
type MediaStore interface {
	// Upload decodes the base64 payload and stores it under the
	// preset, returning a stable reference.
	Upload(ctx context.Context, base64Payload, preset string) (MediaRef, error)
	// Delete removes the object behind the reference id.
	Delete(ctx context.Context, mediaID string) error
}
