package models

// ImageUpload is an inbound image payload handed to the object storage port.
type ImageUpload struct {
	Filename    string
	Content     []byte
	ContentType string
}

// ProcessingJob describes a queued raw-image analysis task. The core only
// hands it off to the queue; it never waits for completion.
type ProcessingJob struct {
	ImageKey string `json:"image_key"`
	Filename string `json:"filename"`
}

// ProductAnalysisJob describes a queued product analysis task dispatched
// when a product with images is created.
type ProductAnalysisJob struct {
	ProductID    string            `json:"product_id"`
	SKU          string            `json:"sku_id"`
	ImageURLs    map[string]string `json:"image_urls"`
	AnalysisType string            `json:"analysis_type"`
}

// NewProductAnalysisJob builds an analysis job with the default analysis
// type.
func NewProductAnalysisJob(productID, sku string, imageURLs map[string]string) ProductAnalysisJob {
	return ProductAnalysisJob{
		ProductID:    productID,
		SKU:          sku,
		ImageURLs:    imageURLs,
		AnalysisType: "genai_analysis",
	}
}
