package firestore

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// isNotFound reports whether a Firestore error indicates a missing document.
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

// isAlreadyExists reports whether a Firestore error indicates a create on an
// existing document id.
func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}
