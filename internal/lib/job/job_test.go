package job

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/deppfellow/hbnb/internal/config"
	"github.com/deppfellow/hbnb/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

func TestNewWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask("betty@hbnb.io", "Betty")
	if err != nil {
		t.Fatal(err)
	}
	if task.Type() != TaskWelcome {
		t.Errorf("type = %s", task.Type())
	}

	var p WelcomeEmailPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		t.Fatal(err)
	}
	if p.To != "betty@hbnb.io" || p.FirstName != "Betty" {
		t.Errorf("payload = %+v", p)
	}
}

func TestHandleWelcomeEmailTaskBadPayload(t *testing.T) {
	log := zerolog.Nop()
	j := &JobService{logger: &log}

	err := j.handleWelcomeEmailTask(context.Background(), asynq.NewTask(TaskWelcome, []byte("{")))
	if !errors.Is(err, asynq.SkipRetry) {
		t.Errorf("err = %v, want SkipRetry", err)
	}
}

func TestHandleWelcomeEmailTaskSends(t *testing.T) {
	log := zerolog.Nop()

	// Templates are resolved relative to the working directory.
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(filepath.Join("..", "..", "..")); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	j := &JobService{
		logger:      &log,
		emailClient: email.NewClient(&config.Config{}, &log),
	}

	task, err := NewWelcomeEmailTask("betty@hbnb.io", "Betty")
	if err != nil {
		t.Fatal(err)
	}
	if err := j.handleWelcomeEmailTask(context.Background(), task); err != nil {
		t.Errorf("handleWelcomeEmailTask: %v", err)
	}
}
