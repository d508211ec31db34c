package message

import "errors"

var (
	// ErrOptionTruncated option extension or value runs past the end of the data.
	ErrOptionTruncated = errors.New("option is truncated")
	// ErrOptionUnexpectedExtendMarker the reserved extend marker 15 occurs in a delta or length nibble.
	ErrOptionUnexpectedExtendMarker = errors.New("unexpected extended option marker")
	// ErrOptionGapTooLarge option delta cannot be represented by the extended field encoding.
	ErrOptionGapTooLarge = errors.New("option gap too large")
	// ErrOptionTooLong option value cannot be represented by the extended field encoding.
	ErrOptionTooLong = errors.New("option is too long")
	// ErrOptionNotFound no option with the requested number is present.
	ErrOptionNotFound = errors.New("option not found")
	// ErrInvalidPathSegment a path segment carries an embedded separator.
	ErrInvalidPathSegment = errors.New("path segment must not contain a separator")
	// ErrInvalidSZX block size exponent is out of range.
	ErrInvalidSZX = errors.New("invalid block szx")
	// ErrBlockNumberExceedLimit block number exceeds limit 268,435,455
	ErrBlockNumberExceedLimit = errors.New("block number exceeds limit 268,435,455")
)
