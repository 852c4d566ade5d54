package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/payetonkawa/api-produit/internal/application/ports"
	"github.com/payetonkawa/api-produit/pkg/config"
)

// Vérification à la compilation que Client implémente TokenVerifier.
var _ ports.TokenVerifier = (*Client)(nil)

const validationPath = "/authentification/validation_token"

// Erreurs typées de la passerelle d'authentification.
// ErrUnreachable couvre l'échec transport (connexion refusée, timeout):
// cas distinct d'une réponse upstream non-200 (UpstreamStatusError).
var (
	ErrForbidden   = errors.New("authapi: jeton refusé par l'API d'authentification")
	ErrUnreachable = errors.New("authapi: API d'authentification injoignable")
)

// UpstreamStatusError réponse non-200 de l'API d'authentification.
// Le statut est reporté tel quel au client HTTP.
type UpstreamStatusError struct {
	StatusCode int
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("authapi: statut upstream %d", e.StatusCode)
}

// Client adaptateur HTTP vers l'API d'authentification externe.
// Chaque Verify est un appel réseau sortant; aucune mise en cache des résultats.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
}

// NewClient construit l'adaptateur. cfg.URL est l'hôte de l'API (AUTHURL),
// cfg.ServiceKey l'identifiant de ce service (SERVICEKEY).
func NewClient(cfg config.AuthConfig) *Client {
	return &Client{
		baseURL:    "http://" + cfg.URL,
		serviceKey: cfg.ServiceKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type validationRequest struct {
	Token      string `json:"token"`
	ServiceKey string `json:"service_key"`
}

type validationResponse struct {
	Validation *bool `json:"validation"`
}

// Verify envoie {token, service_key} à l'API d'authentification et interprète
// la réponse. Rend nil uniquement si le champ validation vaut exactement true.
func (c *Client) Verify(ctx context.Context, token string) error {
	payload := validationRequest{Token: token, ServiceKey: c.serviceKey}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("authapi: sérialiser la requête: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+validationPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("authapi: créer la requête HTTP: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return fmt.Errorf("%w: lecture de la réponse: %s", ErrUnreachable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return &UpstreamStatusError{StatusCode: resp.StatusCode}
	}

	var vr validationResponse
	if err := json.Unmarshal(rawBody, &vr); err != nil {
		return ErrForbidden
	}
	if vr.Validation == nil || !*vr.Validation {
		return ErrForbidden
	}
	return nil
}
