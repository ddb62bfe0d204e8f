package models

// Photo is an uploaded image kept in the object store.
type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}

// UploadResponse is returned after a successful upload.
// @Description Uploaded photo
type UploadResponse struct {
	Success  bool   `json:"success" example:"true"`
	URL      string `json:"url" example:"https://giveaway.example.com/photos/1710000000000-3f0c.jpg"`
	FileName string `json:"fileName" example:"1710000000000-3f0c.jpg"`
	Size     int64  `json:"size" example:"48213"`
	Type     string `json:"type" example:"image/jpeg"`
}
