package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/reportrhq/reportr-go/internal/model"
	"github.com/reportrhq/reportr-go/util"
)

// GetReportImages lists the images attached to a report.
func (c *Client) GetReportImages(ctx context.Context, reportID int) ([]model.Image, error) {
	var images []model.Image
	path := fmt.Sprintf("/api/image/%d", reportID)
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &images); err != nil {
		return nil, err
	}
	return images, nil
}

// AttachImage records an already-uploaded image URL against a report.
// The upload itself goes to Cloudinary first; see util/storage.
func (c *Client) AttachImage(ctx context.Context, reportID int, imageURL string) (int, error) {
	req := model.AttachImageRequest{ImageURL: imageURL}
	if err := util.ValidateStruct(req); err != nil {
		return 0, errors.Wrap(err, "invalid image url")
	}

	var resp IDResponse
	path := fmt.Sprintf("/api/image/%d", reportID)
	if err := c.do(ctx, http.MethodPost, path, nil, req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// DeleteImage removes an image the user attached.
func (c *Client) DeleteImage(ctx context.Context, imageID int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/image/%d", imageID), nil, nil, nil)
}
