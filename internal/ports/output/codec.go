package output

import "arbfix/internal/domain/entities"

// DocumentCodec converts between document text and the ordered object model.
type DocumentCodec interface {
	// Decode parses data, which must hold a single JSON object.
	// Failures are reported as *domain.ParseError without a path.
	Decode(data []byte) (*entities.Object, error)
	// Encode renders o as indented LF-terminated text.
	Encode(o *entities.Object) ([]byte, error)
}
