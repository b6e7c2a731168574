package errors

var (
	// Domain errors — used in usecase/repository
	ErrChannelNotFound      = NotFound("channel not found")
	ErrMembershipNotFound   = NotFound("membership not found")
	ErrNotAMember           = FailedPrecondition("you are not a member of this channel")
	ErrForbidden            = Forbidden("not allowed to perform this action")
	ErrBanned               = Forbidden("you are banned from this channel")
	ErrWrongPassword        = Unauthorized("wrong password")
	ErrPrivateChannel       = Forbidden("private channel can't be joined")
	ErrInvalidChannelType   = InvalidArg("invalid channel type")
	ErrInvalidChannelConfig = InvalidArg("restricted channels require a password")
	ErrDirectImmutable      = InvalidArg("direct channels can't be edited")
)

// ErrStorage marks a persistence failure. Callers can always tell it apart
// from business-rule denials: its code is INTERNAL, never one of the
// domain sentinels above.
func ErrStorage(cause error) error {
	return Wrap(CodeInternal, "storage failure", cause)
}
