package interview

import "mockinterview/internal/catalog"

type InterviewContainer struct {
	Service Service
	Handler *Handler
}

func NewInterviewContainer(source catalog.Source, recorder ResultRecorder) *InterviewContainer {
	store := NewMemoryStore()
	selector := catalog.NewSelector(source)
	service := NewService(store, selector, recorder)
	handler := NewHandler(service)

	return &InterviewContainer{
		Service: service,
		Handler: handler,
	}
}
