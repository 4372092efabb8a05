package usecase

import (
	"context"
	"errors"
	"sync"

	"personal-site/internal/domain/model"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type fakeProvider struct {
	mu        sync.Mutex
	articles  []model.Article
	listErr   error
	listCalls int
	bodies    map[string]string
	fetchErr  map[string]error
}

func (f *fakeProvider) ListArticles(context.Context) ([]model.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.articles, nil
}

func (f *fakeProvider) FetchMarkdown(_ context.Context, url string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.fetchErr[url]; ok {
		return "", err
	}
	body, ok := f.bodies[url]
	if !ok {
		return "", &model.FetchError{URL: url, Status: 404}
	}
	return body, nil
}

func (f *fakeProvider) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

type failingRenderer struct{}

func (failingRenderer) Render(string) (string, error) { return "", errors.New("renderer exploded") }

type recordingMetrics struct {
	mu      sync.Mutex
	fetches map[string]int
	renders map[string]int
	stale   int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{fetches: map[string]int{}, renders: map[string]int{}}
}

func (m *recordingMetrics) FetchCompleted(kind, outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches[kind+"/"+outcome]++
}

func (m *recordingMetrics) RenderCompleted(outcome string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renders[outcome]++
}

func (m *recordingMetrics) StaleSelectionDiscarded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stale++
}
