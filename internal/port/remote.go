package port

import "context"

// AccessTokenProvider exchanges a stored long-lived credential for a
// short-lived bearer token. Implementations surface domain.ErrNotConnected
// when no credential is stored and domain.ErrTokenInvalid when the exchange
// is rejected.
type AccessTokenProvider interface {
	GetAccessToken(ctx context.Context) (string, error)
}

// FolderMimeType marks a listing entry as a subfolder rather than a file.
const FolderMimeType = "application/vnd.google-apps.folder"

// RemoteEntry is a single file or folder returned by a remote listing.
type RemoteEntry struct {
	ID        string
	Name      string
	MimeType  string
	SizeBytes *int64
}

// RemoteFolderClient lists and downloads files from externally hosted folders.
// Listings are paginated: a non-empty next page token means more entries
// remain and the caller must keep listing until the token drains.
type RemoteFolderClient interface {
	ListChildren(ctx context.Context, token, folderID, pageToken string) (entries []RemoteEntry, nextPageToken string, err error)
	Download(ctx context.Context, token, fileID string) ([]byte, error)
}
