// Package notify generates the advisory notification e-mails around
// application lifecycle events. Generation goes through the Gemini
// generateContent endpoint; every failure is logged and swallowed so the
// collaborator can never block or revert a store mutation.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/g-67560126-commits/e-Asrama/models"
)

const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// Notifier produces notification text for wardens and guardians.
type Notifier interface {
	NotifyWardens(ctx context.Context, app models.Application)
	NotifyParentAndWardens(ctx context.Context, app models.Application)
}

// GeminiNotifier calls the generative-text service. With an empty API key it
// stays silent, which keeps local runs free of network calls.
type GeminiNotifier struct {
	apiKey   string
	model    string
	endpoint string
	client   *http.Client
}

func NewGeminiNotifier(apiKey, model string) *GeminiNotifier {
	return &GeminiNotifier{
		apiKey:   apiKey,
		model:    model,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

// NotifyWardens asks for a formal alert mail to the warden office about a
// freshly submitted application.
func (n *GeminiNotifier) NotifyWardens(ctx context.Context, app models.Application) {
	prompt := WardenPrompt(app)
	n.generate(ctx, "KEPADA WARDEN", prompt)
}

// NotifyParentAndWardens asks for the decision mail sent to the guardian
// (and copied to wardens) after a status transition.
func (n *GeminiNotifier) NotifyParentAndWardens(ctx context.Context, app models.Application) {
	prompt := ParentPrompt(app)
	n.generate(ctx, "KEPADA PENJAGA", prompt)
}

// WardenPrompt builds the submission notification prompt.
func WardenPrompt(app models.Application) string {
	return fmt.Sprintf(
		"Anda adalah sistem pengurusan asrama automatik. Hasilkan emel notifikasi RASMI dan PROFESIONAL dalam Bahasa Melayu untuk Warden.\n"+
			"Subjek emel: PERMOHONAN KELUAR ASRAMA (PENDING) - %s\n"+
			"Butiran:\nNama: %s\nKelas: Tingkatan %s\nJenis: %s\nTarikh: %s hingga %s\nKenderaan: %s (%s)\nSebab: %s\n"+
			"Mesej: Minta warden untuk menyemak permohonan ini di Portal e-Asrama dengan kadar segera untuk tujuan keselamatan dan pengesahan kenderaan penjemput.",
		app.StudentName, app.StudentName, app.StudentForm, app.Type,
		app.DateOut, app.DateReturn, app.VehicleType, app.VehiclePlate, app.Reason,
	)
}

// ParentPrompt builds the decision notification prompt.
func ParentPrompt(app models.Application) string {
	statusText := "TIDAK DILULUSKAN"
	if app.Status == models.StatusApproved {
		statusText = "DILULUSKAN"
	}
	comment := app.WardenComment
	if comment == "" {
		comment = "Tiada"
	}
	return fmt.Sprintf(
		"Hasilkan emel RASMI dari Pejabat Warden Asrama kepada Ibu Bapa (%s).\n"+
			"Status: %s\nKomen Warden: %s\nPelajar: %s\nPermohonan: %s\n"+
			"Pastikan nada emel adalah formal, profesional dan mengikut format surat rasmi sekolah. Nyatakan tarikh kembali yang wajib dipatuhi.",
		app.ParentName, statusText, comment, app.StudentName, app.Type,
	)
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (n *GeminiNotifier) generate(ctx context.Context, audience, prompt string) {
	if n.apiKey == "" {
		return
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		log.Printf("[notify] marshal failed: %v", err)
		return
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", n.endpoint, n.model, n.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Printf("[notify] build request failed: %v", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		log.Printf("[notify] gagal menjana emel: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("[notify] gagal menjana emel: status %d: %s", resp.StatusCode, raw)
		return
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		log.Printf("[notify] decode failed: %v", err)
		return
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		log.Printf("[notify] empty response for %s", audience)
		return
	}
	log.Printf("[PORTAL EMEL: %s]\n%s", audience, out.Candidates[0].Content.Parts[0].Text)
}

// Noop satisfies Notifier without doing anything. Handy in tests.
type Noop struct{}

func (Noop) NotifyWardens(context.Context, models.Application)          {}
func (Noop) NotifyParentAndWardens(context.Context, models.Application) {}
