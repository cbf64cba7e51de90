package upload

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s3bb/service/internal/imagemeta"
)

func TestDocumentMarshalJSON(t *testing.T) {
	doc := Document{
		ID:         "abc1234",
		Title:      "cat",
		Filename:   "abc1234.png",
		MIME:       "image/png",
		Extension:  "png",
		URL:        "https://images.s3.eu-west-1.amazonaws.com/abc1234.png",
		Dimensions: &imagemeta.Dimensions{Width: 10, Height: 20},
		Size:       42,
		Time:       time.Unix(1760520000, 0),
		Expiration: 600,
	}

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	const url = "https://images.s3.eu-west-1.amazonaws.com/abc1234.png"
	image := `{"filename":"abc1234.png","name":"abc1234","mime":"image/png","extension":"png","url":"` + url + `"}`
	assert.JSONEq(t, `{
		"data": {
			"id": "abc1234",
			"title": "cat",
			"url_viewer": "`+url+`",
			"url": "`+url+`",
			"display_url": "`+url+`",
			"width": "10",
			"height": "20",
			"size": "42",
			"time": "1760520000",
			"expiration": "600",
			"image": `+image+`,
			"thumb": `+image+`
		},
		"success": true,
		"status": 200
	}`, string(data))
}

func TestDocumentWithoutDimensions(t *testing.T) {
	data, err := json.Marshal(&Document{ID: "abc1234", Time: time.Unix(0, 0)})
	require.NoError(t, err)

	var got struct {
		Data map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "", got.Data["width"])
	assert.Equal(t, "", got.Data["height"])
	assert.Equal(t, "0", got.Data["expiration"])
}
