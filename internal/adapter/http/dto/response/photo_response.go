package response

type PhotoUploadResponse struct {
	URL string `json:"url"`
}
