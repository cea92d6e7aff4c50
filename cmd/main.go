package main

import (
	"cmp"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	_ "github.com/joho/godotenv/autoload"
	glog "github.com/labstack/gommon/log"

	"taleweaver/pkg/inference"
	"taleweaver/pkg/server"
)

func main() {
	ctx, done := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	inf, err := newInferencer(ctx)
	if err != nil {
		log.Fatal("failed to create inferencer", "error", err)
	}

	srv := server.NewServer(ctx, inf)
	if log.GetLevel() <= log.DebugLevel {
		srv.Echo.Logger.SetLevel(glog.DEBUG)
	}

	addr := ":" + cmp.Or(os.Getenv("PORT"), "3000")

	finishedShutDown := make(chan struct{})
	go func() {
		<-ctx.Done()
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Fatal(err)
		}
		done()
		close(finishedShutDown)
	}()

	log.Infof("TaleWeaver server is listening on http://localhost%s", addr)
	if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error(err)
		done()
	}
	<-finishedShutDown
}

// newInferencer prefers Gemini, then an OpenAI-compatible endpoint. With no
// key at all it points at a local OpenAI-compatible server.
func newInferencer(ctx context.Context) (inference.Inferencer, error) {
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		gemini, err := inference.NewGeminiInferencer(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
		if err != nil {
			return nil, err
		}
		log.Info("using gemini backend", "model", gemini.Model())
		return gemini, nil
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	openAI := inference.NewOpenAIInferencer(apiKey, cmp.Or(os.Getenv("OPENAI_MODEL"), inference.DefaultOpenAIModel))
	if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
		openAI.ChangeBaseURL(baseURL)
	} else if apiKey == "" {
		log.Warn("no GEMINI_API_KEY or OPENAI_API_KEY set, using local OpenAI-compatible server")
		openAI.ChangeBaseURL("http://localhost:1234/v1")
		openAI.SetModel(os.Getenv("OPENAI_MODEL"))
	}
	log.Info("using openai-compatible backend", "model", openAI.Model())
	return openAI, nil
}
