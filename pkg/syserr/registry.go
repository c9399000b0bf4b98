package syserr

// CodeEntry describes a registered POSIX error code and the kind it maps to.
type CodeEntry struct {
	Code string
	Kind Kind
}

// codeEntries is sorted by code. Several codes may share a kind.
var codeEntries = [...]CodeEntry{
	{Code: "E2BIG", Kind: KindArgumentListTooLong},
	{Code: "EACCES", Kind: KindNoAccess},
	{Code: "EADDRINUSE", Kind: KindAddressInUse},
	{Code: "EADDRNOTAVAIL", Kind: KindAddressNotAvailable},
	{Code: "EAFNOSUPPORT", Kind: KindAddressFamilyNotSupported},
	{Code: "EAGAIN", Kind: KindNoDataTryAgainLater},
	{Code: "EALREADY", Kind: KindSocketPendingConnectionInProgress},
	{Code: "EBADF", Kind: KindFileDescriptorNotValid},
	{Code: "EBADMSG", Kind: KindInvalidDataMessage},
	{Code: "EBUSY", Kind: KindDeviceOrResourceBusy},
	{Code: "ECANCELED", Kind: KindOperationCancelled},
	{Code: "ECHILD", Kind: KindNoChildProcesses},
	{Code: "ECONNABORTED", Kind: KindNetworkConnectionAborted},
	{Code: "ECONNREFUSED", Kind: KindNetworkConnectionRefused},
	{Code: "ECONNRESET", Kind: KindNetworkConnectionReset},
	{Code: "EDEADLK", Kind: KindResourceDeadlockAvoided},
	{Code: "EDESTADDRREQ", Kind: KindDestinationAddressRequired},
	{Code: "EDOM", Kind: KindArgumentOutOfDomain},
	{Code: "EDQUOT", Kind: KindDiskQuotaExceeded},
	{Code: "EEXIST", Kind: KindFileExists},
	{Code: "EFAULT", Kind: KindInvalidPointerAddress},
	{Code: "EFBIG", Kind: KindFileTooLarge},
	{Code: "EHOSTUNREACH", Kind: KindHostUnreachable},
	{Code: "EIDRM", Kind: KindIdentifierRemoved},
	{Code: "EILSEQ", Kind: KindIllegalByteSequence},
	{Code: "EINPROGRESS", Kind: KindOperationAlreadyInProgress},
	{Code: "EINTR", Kind: KindFunctionCallInterrupted},
	{Code: "EINVAL", Kind: KindInvalidArgument},
	{Code: "EIO", Kind: KindUnspecifiedIOError},
	{Code: "EISCONN", Kind: KindSocketConnected},
	{Code: "EISDIR", Kind: KindPathIsADirectory},
	{Code: "ELOOP", Kind: KindTooManySymlinksLevels},
	{Code: "EMFILE", Kind: KindTooManyOpenFiles},
	{Code: "EMLINK", Kind: KindTooManyLinksToFile},
	{Code: "EMSGSIZE", Kind: KindMessageTooLong},
	{Code: "EMULTIHOP", Kind: KindMultihopAttempted},
	{Code: "ENAMETOOLONG", Kind: KindFilenameTooLong},
	{Code: "ENETDOWN", Kind: KindNetworkIsDown},
	{Code: "ENETRESET", Kind: KindConnectionAbortedByNetwork},
	{Code: "ENETUNREACH", Kind: KindNetworkUnreachable},
	{Code: "ENFILE", Kind: KindTooManyOpenFiles},
	{Code: "ENOBUFS", Kind: KindNoBufferSpaceAvailable},
	{Code: "ENODATA", Kind: KindNoMessageAvailableOnStream},
	{Code: "ENODEV", Kind: KindNoSuchDevice},
	{Code: "ENOENT", Kind: KindNoSuchFileOrDirectory},
	{Code: "ENOEXEC", Kind: KindExecFormat},
	{Code: "ENOLCK", Kind: KindNoLocksAvailable},
	{Code: "ENOLINK", Kind: KindLinkSevered},
	{Code: "ENOMEM", Kind: KindNotEnoughSpace},
	{Code: "ENOMSG", Kind: KindNoMessageOfDesiredType},
	{Code: "ENOPROTOOPT", Kind: KindProtocolNotAvailable},
	{Code: "ENOSPC", Kind: KindNoSpaceOnDevice},
	{Code: "ENOSR", Kind: KindNoStreamResourcesAvailable},
	{Code: "ENOSTR", Kind: KindResourceNotAStream},
	{Code: "ENOSYS", Kind: KindFunctionNotImplemented},
	{Code: "ENOTCONN", Kind: KindSocketNotConnected},
	{Code: "ENOTDIR", Kind: KindNotADirectory},
	{Code: "ENOTEMPTY", Kind: KindDirectoryNotEmpty},
	{Code: "ENOTFOUND", Kind: KindHostnameNotFound},
	{Code: "ENOTSOCK", Kind: KindNotASocket},
	{Code: "ENOTSUP", Kind: KindOperationNotSupported},
	{Code: "ENOTTY", Kind: KindInappropriateIOControlOperation},
	{Code: "ENXIO", Kind: KindNoSuchDeviceOrAddress},
	{Code: "EOPNOTSUPP", Kind: KindOperationNotSupportedOnSocket},
	{Code: "EOVERFLOW", Kind: KindValueTooLarge},
	{Code: "EPERM", Kind: KindOperationNotPermitted},
	{Code: "EPIPE", Kind: KindBrokenPipe},
	{Code: "EPROTO", Kind: KindProtocolError},
	{Code: "EPROTONOSUPPORT", Kind: KindProtocolNotSupported},
	{Code: "EPROTOTYPE", Kind: KindWrongProtocolTypeForSocket},
	{Code: "ERANGE", Kind: KindResultTooLarge},
	{Code: "EROFS", Kind: KindReadOnlyFileSystem},
	{Code: "ESPIPE", Kind: KindInvalidSeekOperation},
	{Code: "ESRCH", Kind: KindNoSuchProcess},
	{Code: "ESTALE", Kind: KindStaleFileHandle},
	{Code: "ETIME", Kind: KindTimerExpired},
	{Code: "ETIMEDOUT", Kind: KindConnectionTimeout},
	{Code: "ETXTBSY", Kind: KindTextFileBusy},
	{Code: "EWOULDBLOCK", Kind: KindOperationWouldBlock},
	{Code: "EXDEV", Kind: KindImproperLink},
}

// codeIndex is populated once by init and only read afterwards.
var codeIndex map[string]Kind

func buildCodeIndex(entries []CodeEntry) map[string]Kind {
	index := make(map[string]Kind, len(entries))
	for _, entry := range entries {
		index[entry.Code] = entry.Kind
	}
	return index
}

// CodeRegistry returns the registered codes in deterministic order.
func CodeRegistry() []CodeEntry {
	entries := make([]CodeEntry, len(codeEntries))
	copy(entries, codeEntries[:])
	return entries
}

// HasCode reports whether code is registered. Matching is exact.
func HasCode(code string) bool {
	_, ok := codeIndex[code]
	return ok
}

// KindForCode returns the kind registered for code.
func KindForCode(code string) (Kind, bool) {
	kind, ok := codeIndex[code]
	return kind, ok
}

// Codes returns every registered code, sorted.
func Codes() []string {
	codes := make([]string, 0, len(codeEntries))
	for _, entry := range codeEntries {
		codes = append(codes, entry.Code)
	}
	return codes
}

// CodesFor returns the codes that map to kind, sorted.
// KindUnknown has no codes.
func CodesFor(kind Kind) []string {
	var codes []string
	for _, entry := range codeEntries {
		if entry.Kind == kind {
			codes = append(codes, entry.Code)
		}
	}
	return codes
}
