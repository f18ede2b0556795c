package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// GeminiService probes the generative-language provider once at startup. The
// probe result only gates the "AI active" status badge; conversational replies
// stay rule based and keep working when the probe fails.
type GeminiService struct {
	apiKey string
	client *genai.Client
	model  *genai.GenerativeModel

	mu          sync.RWMutex
	initialized bool
}

// NewGeminiService creates the provider probe from GEMINI_API_KEY
func NewGeminiService() *GeminiService {
	return &GeminiService{
		apiKey: os.Getenv("GEMINI_API_KEY"),
	}
}

// Initialize connects to the provider and runs a single liveness probe
func (g *GeminiService) Initialize(ctx context.Context) error {
	if g.apiKey == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY not set", ErrInvalidCredentials)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(g.apiKey))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	model := client.GenerativeModel("gemini-2.0-flash-exp")
	model.SetTemperature(0.1)
	model.SetTopK(10)
	model.SetTopP(0.5)
	model.SetMaxOutputTokens(300)
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
	}

	if _, err := model.GenerateContent(ctx, genai.Text("test")); err != nil {
		client.Close()
		return fmt.Errorf("%w: %v", classifyProbeError(err), err)
	}

	g.mu.Lock()
	g.client = client
	g.model = model
	g.initialized = true
	g.mu.Unlock()

	log.Println("✅ Gemini provider probe succeeded")
	return nil
}

// classifyProbeError sorts a probe failure into the sentinel it belongs to.
// The provider surfaces errors both as googleapi REST errors and as gRPC
// status codes depending on transport.
func classifyProbeError(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests:
			return ErrQuotaExceeded
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrInvalidCredentials
		}
	}

	switch status.Code(err) {
	case codes.ResourceExhausted:
		return ErrQuotaExceeded
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrInvalidCredentials
	}

	return ErrProviderUnavailable
}

// IsInitialized reports whether the startup probe succeeded
func (g *GeminiService) IsInitialized() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.initialized
}

// HasCredentials reports whether an API key is configured at all
func (g *GeminiService) HasCredentials() bool {
	return g.apiKey != ""
}

// Close releases the provider client
func (g *GeminiService) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		g.client.Close()
		g.client = nil
		g.initialized = false
	}
}
