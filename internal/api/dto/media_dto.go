package dto

// MediaDTO 封面图上传结果
type MediaDTO struct {
	URL       string `json:"url"`
	Object    string `json:"object"`
	MimeType  string `json:"mimeType"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Size      int64  `json:"size"`
	CreatedAt int64  `json:"createdAt"`
}
