package service

import (
	"context"

	"course-assist-be/internal/constant"
	"course-assist-be/internal/dto"
	"course-assist-be/pkg/ingest"
	"course-assist-be/pkg/vectorstore"
)

type IIngestionService interface {
	Rebuild(ctx context.Context) (*dto.RebuildResponse, error)
	Stats(ctx context.Context, namespace string) (*dto.IndexStatsResponse, error)
}

type ingestionService struct {
	pipeline *ingest.Pipeline
	index    vectorstore.VectorIndex
}

func NewIngestionService(pipeline *ingest.Pipeline, index vectorstore.VectorIndex) IIngestionService {
	return &ingestionService{
		pipeline: pipeline,
		index:    index,
	}
}

func (s *ingestionService) Rebuild(ctx context.Context) (*dto.RebuildResponse, error) {
	summary, err := s.pipeline.Rebuild(ctx, constant.NamespaceCourseMaterials)
	if err != nil {
		return nil, err
	}
	return &dto.RebuildResponse{
		ChunksIndexed:    summary.ChunksIndexed,
		SourcesProcessed: summary.SourcesProcessed,
	}, nil
}

func (s *ingestionService) Stats(ctx context.Context, namespace string) (*dto.IndexStatsResponse, error) {
	if namespace == "" {
		namespace = constant.NamespaceCourseMaterials
	}
	count, err := s.index.Stats(ctx, namespace)
	if err != nil {
		return nil, err
	}
	return &dto.IndexStatsResponse{
		Namespace:   namespace,
		VectorCount: count,
	}, nil
}
