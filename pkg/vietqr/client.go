package vietqr

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// maxImageBytes bounds the QR image body we are willing to buffer
const maxImageBytes = 2 << 20

var (
	// ErrNotImage is returned when the QR endpoint answers with something other than an image
	ErrNotImage = errors.New("vietqr: response is not an image")
	// ErrImageTooLarge is returned when the image body exceeds maxImageBytes
	ErrImageTooLarge = errors.New("vietqr: image exceeds size limit")
)

// Config holds the endpoints and options of the VietQR services
type Config struct {
	ImageBaseURL string // e.g. https://img.vietqr.io/image
	BanksURL     string // e.g. https://api.vietqr.io/v2/banks
	Template     string // e.g. compact2
	Timeout      time.Duration
}

// ImageRequest parameterizes one QR image
type ImageRequest struct {
	BankCode      string
	AccountNumber string
	AccountName   string
	Amount        int64
	AddInfo       string
}

// Bank is one entry of the bank directory
type Bank struct {
	ID        int    `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"shortName"`
	Logo      string `json:"logo"`
	BIN       string `json:"bin"`
}

// Client talks to the VietQR image and bank-directory endpoints
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a VietQR client
func NewClient(cfg Config) *Client {
	if cfg.Template == "" {
		cfg.Template = "compact2"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// ImageURL builds the quick-link URL:
// {base}/{bank}-{account}-{template}.png?amount=..&addInfo=..&accountName=..
func (c *Client) ImageURL(req ImageRequest) string {
	q := url.Values{}
	q.Set("amount", strconv.FormatInt(req.Amount, 10))
	q.Set("addInfo", req.AddInfo)
	q.Set("accountName", req.AccountName)

	path := fmt.Sprintf("%s-%s-%s.png",
		url.PathEscape(req.BankCode),
		url.PathEscape(req.AccountNumber),
		c.cfg.Template,
	)
	return strings.TrimRight(c.cfg.ImageBaseURL, "/") + "/" + path + "?" + q.Encode()
}

// FetchImage downloads the QR image and returns it as a data URI, so the
// result can be cached and redisplayed without network access.
func (c *Client) FetchImage(ctx context.Context, req ImageRequest) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ImageURL(req), nil)
	if err != nil {
		return "", fmt.Errorf("vietqr: build request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("vietqr: fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("vietqr: image endpoint returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("vietqr: read image: %w", err)
	}
	if len(body) > maxImageBytes {
		return "", ErrImageTooLarge
	}

	return EncodeDataURI(body)
}

// EncodeDataURI validates that data is an image and returns data:<mime>;base64,<payload>
func EncodeDataURI(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNotImage
	}
	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return "", fmt.Errorf("%w (detected %s)", ErrNotImage, mtype.String())
	}
	return "data:" + mtype.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

type banksResponse struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
	Data []Bank `json:"data"`
}

// ListBanks fetches the public bank directory
func (c *Client) ListBanks(ctx context.Context) ([]Bank, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BanksURL, nil)
	if err != nil {
		return nil, fmt.Errorf("vietqr: build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("vietqr: fetch banks: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vietqr: bank directory returned %d", resp.StatusCode)
	}

	var payload banksResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("vietqr: decode banks: %w", err)
	}
	if payload.Data == nil {
		return []Bank{}, nil
	}
	return payload.Data, nil
}
