package domain

// Asset references a stored file. URL is what clients fetch; Key is what the
// backing store needs to delete or overwrite it.
type Asset struct {
	URL string `json:"url" dynamodbav:"url"`
	Key string `json:"key" dynamodbav:"key"`
}

// AssetKind selects the storage prefix and content-type allow-list for an upload.
type AssetKind string

const (
	AssetCourse      AssetKind = "uploads"
	AssetCertificate AssetKind = "certificates"
	AssetPlacement   AssetKind = "placements"
	AssetBanner      AssetKind = "banners"
)

// AssetKinds lists every kind; the local backend serves each as a static prefix.
var AssetKinds = []AssetKind{AssetCourse, AssetCertificate, AssetPlacement, AssetBanner}
