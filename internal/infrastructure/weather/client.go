package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"smartagri/internal/domain/entity"
)

// Client fetches current conditions from OpenWeatherMap in metric units.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type currentResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Message string `json:"message"`
}

func (c *Client) ByCoordinates(ctx context.Context, lat, lon float64) (*entity.Weather, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return c.current(ctx, params)
}

func (c *Client) ByCity(ctx context.Context, city string) (*entity.Weather, error) {
	params := url.Values{}
	params.Set("q", city)
	return c.current(ctx, params)
}

func (c *Client) current(ctx context.Context, params url.Values) (*entity.Weather, error) {
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	var body currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather provider returned %d: %s", resp.StatusCode, body.Message)
	}
	if len(body.Weather) == 0 {
		return nil, fmt.Errorf("weather provider returned no conditions")
	}

	return &entity.Weather{
		Temperature:  body.Main.Temp,
		Condition:    body.Weather[0].Main,
		Description:  body.Weather[0].Description,
		IconID:       body.Weather[0].Icon,
		LocationName: body.Name,
	}, nil
}
