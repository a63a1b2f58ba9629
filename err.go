package der

/*
err.go contains error constructors and literals used frequently
throughout this package.

Every error this package returns falls into one of four kinds:
InvalidInput (malformed on-wire data), InvalidData (well-framed but
semantically invalid content), UnexpectedEof (reader exhausted early)
and Io (opaque writer/reader failure, returned as-is). The sentinels
below are all InvalidInput unless their comment says otherwise.
*/

import "sync"

var (
	errorEmptyIdentifier      error = mkerr("empty identifier")
	errorTagTooLarge          error = mkerr("too many tag bytes")
	errorTruncatedTag         error = mkerr("truncated high-tag-number form")
	errorIndefiniteProhibited error = mkerr("indefinite length not supported")
	errorEmptyLength          error = mkerr("length bytes not found")
	errorLengthTooLarge       error = mkerr("length bytes too large for native word size")
	errorZeroLengthOfLength   error = mkerr("length-of-length byte may not be zero")

	errorBooleanLength error = mkerr("BOOLEAN: length must be exactly 1")
	errorNullLength     error = mkerr("NULL: length must be exactly 0")
	errorIntegerEmpty   error = mkerr("INTEGER: empty content")
	errorIntegerTooWide error = mkerr("INTEGER: content wider than target type")

	errorSequenceOfShort error = mkerr("SEQUENCE OF: element did not end at the declared boundary")
	errorUnknownEnum     error = mkerr("unknown enum variant")
	errorNoChoiceMatch   error = mkerr("was not able to decode choice option")

	// errorInvalidUTF8 is InvalidData, not InvalidInput: the framing is
	// fine, the payload just isn't valid UTF-8.
	errorInvalidUTF8 error = mkerr("UTF8String: invalid UTF-8 content")
)

func errorDuplicateChoiceTag(class Class, tag UniversalTag) error {
	return mkerrf("CHOICE: duplicate alternative for class ", class.String(),
		" tag ", itoa(int(tag)))
}

func errorWrongTag(want, got UniversalTag) error {
	return mkerrf("expected tag ", want.String(), ", got ", got.String())
}

func errorWrongClass(want, got Class) error {
	return mkerrf("expected class ", want.String(), ", got ", got.String())
}

var errCache sync.Map

/*
mkerrf concatenates parts into a single message and interns the
resulting error so that repeated malformed-input failures (which tend
to repeat identically under fuzzing or retry loops) don't keep
allocating new error values.
*/
func mkerrf(parts ...string) error {
	msg := join(parts, "")
	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
