package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"vidozet/internal/apperrors"
	"vidozet/internal/config"
	"vidozet/internal/domain"
	"vidozet/internal/fetcher"
	"vidozet/internal/logger"
	"vidozet/internal/summarizer"
	"vidozet/internal/transcriber"
	"vidozet/internal/validate"
)

// ErrRunInProgress is returned when a second run is started while one
// is still active.
var ErrRunInProgress = errors.New("bir işlem zaten devam ediyor")

// Orchestrator sequences fetch, transcription, summarization, and
// persistence on a background goroutine, owns the temporary file
// lifecycle, and reports progress through the event bus. At most one
// run is active per instance.
type Orchestrator struct {
	cfg         *config.Config
	logger      logger.Logger
	fetcher     fetcher.Fetcher
	transcriber transcriber.Transcriber
	summarizer  summarizer.Summarizer
	bus         *EventBus

	mu      sync.Mutex
	state   domain.RunState
	running bool
}

// New creates an Orchestrator in idle state.
func New(cfg *config.Config, log logger.Logger, f fetcher.Fetcher, t transcriber.Transcriber, s summarizer.Summarizer) *Orchestrator {
	return &Orchestrator{
		cfg:         cfg,
		logger:      log,
		fetcher:     f,
		transcriber: t,
		summarizer:  s,
		bus:         NewEventBus(256),
		state:       domain.StateIdle,
	}
}

// Events exposes the bus the presentation layer drains.
func (o *Orchestrator) Events() *EventBus {
	return o.bus
}

// State returns the current run state.
func (o *Orchestrator) State() domain.RunState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// Start validates the request and launches the pipeline on a background
// goroutine. Input errors and an already-active run are reported
// synchronously; in both cases no goroutine starts and no state changes.
func (o *Orchestrator) Start(ctx context.Context, req domain.SourceRequest) (*Run, error) {
	if err := validate.Request(req); err != nil {
		return nil, err
	}

	o.mu.Lock()
	if o.running {
		o.mu.Unlock()
		return nil, ErrRunInProgress
	}
	o.running = true
	o.mu.Unlock()

	r := newRun(uuid.NewString())
	go o.run(ctx, req, r)
	return r, nil
}

// run executes the four stages in order. Finalization is deferred so it
// runs on every exit path, including a panic escaping a stage call.
func (o *Orchestrator) run(ctx context.Context, req domain.SourceRequest, r *Run) {
	var art *domain.AudioArtifact

	defer func() {
		if rec := recover(); rec != nil {
			o.logger.Error(ctx, "Ana işlem sırasında beklenmedik hata: %v", rec)
			o.toFailed(r, "Genel Hata", fmt.Sprintf("Beklenmedik bir hata oluştu: %v", rec))
			r.result.Err = fmt.Errorf("unexpected pipeline failure: %v", rec)
		}
		o.finalize(ctx, art)
		o.mu.Lock()
		o.running = false
		o.mu.Unlock()
		close(r.done)
	}()

	o.setState(r, domain.StateFetching, "Video sesi indiriliyor (yt-dlp)...")
	fetched, err := o.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		o.fail(ctx, r, "İndirme Hatası",
			fmt.Sprintf("Ses indirilemedi: %s", apperrors.UserMessage(err)), err)
		return
	}
	art = fetched
	o.status(r, fmt.Sprintf("Ses indirildi: %s", filepath.Base(art.FilePath)))

	o.setState(r, domain.StateTranscribing, fmt.Sprintf(
		"Transkript oluşturuluyor (Whisper Model: %s - Bu işlem uzun sürebilir)...",
		o.cfg.Whisper.Model))
	transcript, err := o.transcriber.Transcribe(ctx, art, true)
	if err != nil {
		o.fail(ctx, r, "Transkript Hatası",
			fmt.Sprintf("Transkript oluşturulamadı: %s", apperrors.UserMessage(err)), err)
		return
	}
	if transcript.Text == "" {
		o.fail(ctx, r, "Transkript Hatası",
			"Transkript oluşturulamadı (bilinmeyen hata).", nil)
		return
	}
	o.status(r, fmt.Sprintf(
		"Transkript tamamlandı (Algılanan Dil: %s). Özetleme başlıyor...", transcript.Language))

	o.setState(r, domain.StateSummarizing, fmt.Sprintf(
		"Metin Gemini API ile '%s' dilinden Türkçe'ye özetleniyor...", transcript.Language))
	summary, err := o.summarizer.Summarize(ctx, transcript.Text, req.APIKey, transcript.Language)
	if err != nil {
		o.fail(ctx, r, "Özetleme Hatası",
			fmt.Sprintf("Metin özetlenemedi.\n\nHata: %s", apperrors.UserMessage(err)), err)
		return
	}

	r.result.Summary = summary.Text
	r.result.Language = transcript.Language
	o.bus.Publish(Event{RunID: r.ID, Type: EventTypeResult, Message: summary.Text})

	o.setState(r, domain.StatePersisting, "Özet dosyaya kaydediliyor...")
	persistErr := o.persist(ctx, summary.Text)

	o.setState(r, domain.StateDone, "İşlem başarıyla tamamlandı!")
	if persistErr != nil {
		// Persistence failure never hides a produced summary; the run
		// still counts as successful, with a qualifying message.
		o.logger.Warn(ctx, "Özet kaydedilemedi: %v", persistErr)
		o.bus.Publish(Event{
			RunID: r.ID, Type: EventTypeInfo, Title: "Kaydetme Uyarısı",
			Message: fmt.Sprintf(
				"Özet başarıyla oluşturuldu ancak '%s' dosyasına kaydedilemedi: %v",
				o.cfg.Paths.SummaryFile, persistErr),
		})
		return
	}

	o.logger.Info(ctx, "Özet başarıyla kaydedildi: %s", o.cfg.Paths.SummaryFile)
	o.bus.Publish(Event{
		RunID: r.ID, Type: EventTypeInfo, Title: "Başarılı",
		Message: fmt.Sprintf(
			"Video özeti başarıyla oluşturuldu ve '%s' dosyasına kaydedildi.",
			o.cfg.Paths.SummaryFile),
	})
}

// persist writes the summary text file and, when enabled, the docx
// rendition. A docx failure is only a warning on top of a saved txt.
func (o *Orchestrator) persist(ctx context.Context, summary string) error {
	if err := summarizer.SaveText(summary, o.cfg.Paths.SummaryFile); err != nil {
		return err
	}

	if o.cfg.Export.Docx {
		if err := summarizer.SaveDocx("Video Özeti", summary, o.cfg.Paths.DocxFile); err != nil {
			o.logger.Warn(ctx, "Docx dışa aktarımı başarısız: %v", err)
		}
	}
	return nil
}

// finalize is the unconditional cleanup phase: delete a still-owned
// audio file, remove the temp directory if it ended up empty.
func (o *Orchestrator) finalize(ctx context.Context, art *domain.AudioArtifact) {
	if art != nil && !art.Consumed() && art.Exists() {
		if err := art.Release(); err != nil {
			o.logger.Warn(ctx, "Temizlik: '%s' silinemedi: %v", art.FilePath, err)
		} else {
			o.logger.Info(ctx, "Temizlik: İşlem sonu artık '%s' silindi.", art.FilePath)
		}
	}

	tempDir := o.cfg.Paths.Temp
	entries, err := os.ReadDir(tempDir)
	if err == nil && len(entries) == 0 {
		if err := os.Remove(tempDir); err != nil {
			o.logger.Warn(ctx, "Temizlik: Geçici dizin '%s' silinemedi: %v", tempDir, err)
		} else {
			o.logger.Info(ctx, "Temizlik: Boş geçici dizin '%s' silindi.", tempDir)
		}
	}
}

// fail records the terminal error, publishes the error dialog, and
// moves the run to Failed. Remaining stages are skipped by the caller
// returning immediately after.
func (o *Orchestrator) fail(ctx context.Context, r *Run, title, message string, err error) {
	if err != nil {
		o.logger.Error(ctx, "%s: %v", title, err)
		r.result.Err = err
	} else {
		o.logger.Error(ctx, "%s: %s", title, message)
		r.result.Err = errors.New(message)
	}
	o.toFailed(r, title, message)
}

func (o *Orchestrator) toFailed(r *Run, title, message string) {
	o.mu.Lock()
	if domain.IsValidTransition(o.state, domain.StateFailed) {
		o.state = domain.StateFailed
	}
	o.mu.Unlock()

	o.bus.Publish(Event{
		RunID: r.ID, Type: EventTypeError,
		State: domain.StateFailed, Title: title, Message: message,
	})
}

// setState advances the state machine and publishes the stage's status
// line. Transitions only happen on stage boundaries, so an invalid edge
// is a programming error worth logging loudly.
func (o *Orchestrator) setState(r *Run, next domain.RunState, statusLine string) {
	o.mu.Lock()
	if !domain.IsValidTransition(o.state, next) {
		o.mu.Unlock()
		o.logger.Error(context.Background(), "geçersiz durum geçişi: %s -> %s", o.state, next)
		return
	}
	o.state = next
	o.mu.Unlock()

	o.bus.Publish(Event{RunID: r.ID, Type: EventTypeStatus, State: next, Message: statusLine})
}

func (o *Orchestrator) status(r *Run, line string) {
	o.mu.Lock()
	state := o.state
	o.mu.Unlock()
	o.bus.Publish(Event{RunID: r.ID, Type: EventTypeStatus, State: state, Message: line})
}
