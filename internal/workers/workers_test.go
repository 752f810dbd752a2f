package workers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingWorker struct {
	name string
	log  *[]string
}

func (w *recordingWorker) Start(_ context.Context) {
	*w.log = append(*w.log, "start "+w.name)
}

func (w *recordingWorker) Stop() {
	*w.log = append(*w.log, "stop "+w.name)
}

func TestWorkers_StartInOrderStopInReverse(t *testing.T) {
	var log []string
	aggregate := New(
		&recordingWorker{name: "first", log: &log},
		&recordingWorker{name: "second", log: &log},
		&recordingWorker{name: "third", log: &log},
	)

	aggregate.Start(context.Background())
	aggregate.Stop()

	assert.Equal(t, []string{
		"start first", "start second", "start third",
		"stop third", "stop second", "stop first",
	}, log)
}

func TestWorkers_EmptyAggregate(t *testing.T) {
	aggregate := New()
	aggregate.Start(context.Background())
	aggregate.Stop()
}
