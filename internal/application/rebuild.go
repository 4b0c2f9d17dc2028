package application

import (
	"arbfix/internal/domain"
	"arbfix/internal/domain/entities"
)

// rebuild returns a new document holding @@locale first, then every message
// of src followed by its metadata object. src is not modified.
func rebuild(path string, src *entities.Object) (*entities.Object, entities.Result, []domain.MalformedMetadata) {
	res := entities.Result{Path: path}
	out := entities.NewObject()

	if v, ok := src.Get(entities.LocaleKey); ok {
		out.Set(entities.LocaleKey, v)
		if v.Kind == entities.KindString {
			res.Locale = v.Text
		}
	} else if locale, ok := entities.LocaleFromPath(path); ok {
		out.Set(entities.LocaleKey, entities.String(locale))
		res.Locale = locale
		res.LocaleDerived = true
	}

	var malformed []domain.MalformedMetadata
	owned := make(map[string]bool)
	for _, m := range src.Members() {
		if entities.IsMetadataKey(m.Key) {
			continue
		}
		metaKey := entities.MetadataKey(m.Key)
		owned[metaKey] = true

		meta, bad := coerceMetadata(src, metaKey)
		if bad != nil {
			malformed = append(malformed, *bad)
			res.Coerced++
		}
		if ensureDescription(meta, m.Key) {
			res.Synthesized++
		}

		out.Set(m.Key, m.Value)
		out.Set(metaKey, entities.ObjectValue(meta))
		res.Messages++
	}

	for _, m := range src.Members() {
		if m.Key != entities.LocaleKey && entities.IsMetadataKey(m.Key) && !owned[m.Key] {
			res.Orphans++
		}
	}
	return out, res, malformed
}

// coerceMetadata returns a copy of the object stored under metaKey. A missing
// value yields an empty object; a value of any other kind yields an empty
// object and a MalformedMetadata record.
func coerceMetadata(src *entities.Object, metaKey string) (*entities.Object, *domain.MalformedMetadata) {
	v, ok := src.Get(metaKey)
	switch {
	case !ok:
		return entities.NewObject(), nil
	case v.Kind != entities.KindObject || v.Object == nil:
		return entities.NewObject(), &domain.MalformedMetadata{Key: metaKey, Kind: v.Kind.String()}
	default:
		return v.Object.Clone(), nil
	}
}

// ensureDescription sets the auto-generated description unless meta already
// holds a non-empty string one. It reports whether it wrote anything.
func ensureDescription(meta *entities.Object, key string) bool {
	if d, ok := meta.Get(entities.DescriptionField); ok && d.Kind == entities.KindString && d.Text != "" {
		return false
	}
	meta.Set(entities.DescriptionField, entities.String(entities.AutoDescription(key)))
	return true
}
