package upload

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/s3bb/service/internal/imagemeta"
)

// Document describes a stored image. It serializes to the imgbb v1 upload
// response, which carries every number as a string.
type Document struct {
	ID         string
	Title      string
	Filename   string
	MIME       string
	Extension  string
	URL        string
	Dimensions *imagemeta.Dimensions // nil when the payload could not be probed
	Size       int64
	Time       time.Time
	Expiration int64
}

type documentJSON struct {
	Data    dataJSON `json:"data"`
	Success bool     `json:"success"`
	Status  int      `json:"status"`
}

type dataJSON struct {
	ID         string    `json:"id"          example:"2ndCYJK"`
	Title      string    `json:"title"       example:"cat"`
	URLViewer  string    `json:"url_viewer"  example:"https://images.s3.eu-west-1.amazonaws.com/2ndCYJK.png"`
	URL        string    `json:"url"         example:"https://images.s3.eu-west-1.amazonaws.com/2ndCYJK.png"`
	DisplayURL string    `json:"display_url" example:"https://images.s3.eu-west-1.amazonaws.com/2ndCYJK.png"`
	Width      string    `json:"width"       example:"10"`
	Height     string    `json:"height"      example:"10"`
	Size       string    `json:"size"        example:"42"`
	Time       string    `json:"time"        example:"1760520000"`
	Expiration string    `json:"expiration"  example:"0"`
	Image      imageJSON `json:"image"`
	Thumb      imageJSON `json:"thumb"`
}

type imageJSON struct {
	Filename  string `json:"filename"  example:"2ndCYJK.png"`
	Name      string `json:"name"      example:"2ndCYJK"`
	MIME      string `json:"mime"      example:"image/png"`
	Extension string `json:"extension" example:"png"`
	URL       string `json:"url"       example:"https://images.s3.eu-west-1.amazonaws.com/2ndCYJK.png"`
}

// MarshalJSON renders the imgbb response shape. thumb repeats image since no
// thumbnail is generated.
func (d Document) MarshalJSON() ([]byte, error) {
	img := imageJSON{
		Filename:  d.Filename,
		Name:      d.ID,
		MIME:      d.MIME,
		Extension: d.Extension,
		URL:       d.URL,
	}

	var width, height string
	if d.Dimensions != nil {
		width = strconv.Itoa(d.Dimensions.Width)
		height = strconv.Itoa(d.Dimensions.Height)
	}

	return json.Marshal(documentJSON{
		Data: dataJSON{
			ID:         d.ID,
			Title:      d.Title,
			URLViewer:  d.URL,
			URL:        d.URL,
			DisplayURL: d.URL,
			Width:      width,
			Height:     height,
			Size:       strconv.FormatInt(d.Size, 10),
			Time:       strconv.FormatInt(d.Time.Unix(), 10),
			Expiration: strconv.FormatInt(d.Expiration, 10),
			Image:      img,
			Thumb:      img,
		},
		Success: true,
		Status:  http.StatusOK,
	})
}
