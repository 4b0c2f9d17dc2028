package application

import (
	"bytes"
	"context"
	"errors"

	"golang.org/x/text/language"

	"arbfix/internal/domain"
	"arbfix/internal/domain/entities"
	"arbfix/internal/logger"
	"arbfix/internal/ports/input"
	"arbfix/internal/ports/output"
	"arbfix/pkg/eol"
)

var _ input.NormalizerUseCase = (*NormalizerService)(nil)

// NormalizerService rewrites ARB documents so that every message is followed
// by a metadata object carrying a description, with @@locale first.
type NormalizerService struct {
	store output.DocumentStore
	codec output.DocumentCodec
	log   logger.Logger
}

func NewNormalizerService(
	store output.DocumentStore,
	codec output.DocumentCodec,
	log logger.Logger,
) *NormalizerService {
	if log == nil {
		log = logger.Discard()
	}
	return &NormalizerService{
		store: store,
		codec: codec,
		log:   log,
	}
}

// Normalize processes paths in order and stops at the first error. Files
// after the failing one are left untouched.
func (s *NormalizerService) Normalize(ctx context.Context, paths []string) ([]entities.Result, error) {
	return s.run(ctx, paths, true)
}

// Check computes the same output as Normalize without writing it. It returns
// domain.ErrDrift when at least one file would change.
func (s *NormalizerService) Check(ctx context.Context, paths []string) ([]entities.Result, error) {
	results, err := s.run(ctx, paths, false)
	if err != nil {
		return results, err
	}
	for _, r := range results {
		if r.Changed {
			return results, domain.ErrDrift
		}
	}
	return results, nil
}

func (s *NormalizerService) run(ctx context.Context, paths []string, write bool) ([]entities.Result, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoTargets
	}
	results := make([]entities.Result, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := s.process(ctx, path, write)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (s *NormalizerService) process(ctx context.Context, path string, write bool) (entities.Result, error) {
	data, err := s.store.Read(ctx, path)
	if err != nil {
		return entities.Result{}, err
	}

	src, err := s.codec.Decode(data)
	if err != nil {
		var parseErr *domain.ParseError
		if errors.As(err, &parseErr) {
			parseErr.Path = path
			return entities.Result{}, parseErr
		}
		return entities.Result{}, &domain.ParseError{Path: path, Err: err}
	}

	doc, res, malformed := rebuild(path, src)
	for _, m := range malformed {
		s.log.Warn("metadata replaced by an empty object", "path", path, "key", m.Key, "kind", m.Kind)
	}
	if res.LocaleDerived {
		if _, err := language.Parse(res.Locale); err != nil {
			s.log.Debug("derived locale is not a BCP 47 tag", "path", path, "locale", res.Locale)
		}
	}

	text, err := s.codec.Encode(doc)
	if err != nil {
		return entities.Result{}, err
	}
	text = eol.Apply(text, eol.Detect(data))
	res.Changed = !bytes.Equal(text, data)

	if write {
		if err := s.store.Write(ctx, path, text); err != nil {
			return entities.Result{}, err
		}
	}

	s.log.Info("normalized",
		"path", path,
		"locale", res.Locale,
		"messages", res.Messages,
		"synthesized", res.Synthesized,
		"changed", res.Changed,
		"written", write,
	)
	return res, nil
}
