package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors returned by the directory services. Handlers translate these
// into HTTP statuses with errors.Is / errors.As.
var (
    ErrUserNotFound       = errors.New("user not found")
    ErrGroupNotFound      = errors.New("group not found")
    ErrSystemNotFound     = errors.New("system not found")
    ErrPermissionNotFound = errors.New("permission not found")

    ErrEmailTaken          = errors.New("email is already in use")
    ErrGroupNameTaken      = errors.New("a group with this name already exists")
    ErrSystemNameTaken     = errors.New("a system with this name already exists")
    ErrPermissionNameTaken = errors.New("a permission with this name already exists")
)

// InvalidReference lists the IDs of one relationship kind that did not resolve
// to an existing active row.
type InvalidReference struct {
    Kind string
    IDs  []uint
}

// InvalidReferenceError is returned when a submitted relationship ID set
// contains IDs that do not resolve. It keeps the offending IDs grouped by
// relationship kind so callers can report exactly which references failed.
type InvalidReferenceError struct {
    References []InvalidReference
}

func (e *InvalidReferenceError) Error() string {
    clauses := make([]string, 0, len(e.References))
    for _, ref := range e.References {
        ids := make([]string, len(ref.IDs))
        for i, id := range ref.IDs {
            ids[i] = strconv.FormatUint(uint64(id), 10)
        }
        clauses = append(clauses, fmt.Sprintf("one or more %s IDs are invalid or inactive: %s", ref.Kind, strings.Join(ids, ", ")))
    }
    return strings.Join(clauses, "; ")
}

// IDsFor returns the offending IDs recorded for a relationship kind
func (e *InvalidReferenceError) IDsFor(kind string) []uint {
    for _, ref := range e.References {
        if ref.Kind == kind {
            return ref.IDs
        }
    }
    return nil
}
