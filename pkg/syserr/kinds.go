package syserr

// Kind identifies one entry of the system error catalog.
// The zero value is KindUnknown.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindArgumentListTooLong               // E2BIG
	KindNoAccess                          // EACCES
	KindAddressInUse                      // EADDRINUSE
	KindAddressNotAvailable               // EADDRNOTAVAIL
	KindAddressFamilyNotSupported         // EAFNOSUPPORT
	KindNoDataTryAgainLater               // EAGAIN
	KindSocketPendingConnectionInProgress // EALREADY
	KindFileDescriptorNotValid            // EBADF
	KindInvalidDataMessage                // EBADMSG
	KindDeviceOrResourceBusy              // EBUSY
	KindOperationCancelled                // ECANCELED
	KindNoChildProcesses                  // ECHILD
	KindNetworkConnectionAborted          // ECONNABORTED
	KindNetworkConnectionRefused          // ECONNREFUSED
	KindNetworkConnectionReset            // ECONNRESET
	KindResourceDeadlockAvoided           // EDEADLK
	KindDestinationAddressRequired        // EDESTADDRREQ
	KindArgumentOutOfDomain               // EDOM
	KindDiskQuotaExceeded                 // EDQUOT
	KindFileExists                        // EEXIST
	KindInvalidPointerAddress             // EFAULT
	KindFileTooLarge                      // EFBIG
	KindHostUnreachable                   // EHOSTUNREACH
	KindIdentifierRemoved                 // EIDRM
	KindIllegalByteSequence               // EILSEQ
	KindOperationAlreadyInProgress        // EINPROGRESS
	KindFunctionCallInterrupted           // EINTR
	KindInvalidArgument                   // EINVAL
	KindUnspecifiedIOError                // EIO
	KindSocketConnected                   // EISCONN
	KindPathIsADirectory                  // EISDIR
	KindTooManySymlinksLevels             // ELOOP
	KindTooManyOpenFiles                  // EMFILE, ENFILE
	KindTooManyLinksToFile                // EMLINK
	KindMessageTooLong                    // EMSGSIZE
	KindMultihopAttempted                 // EMULTIHOP
	KindFilenameTooLong                   // ENAMETOOLONG
	KindNetworkIsDown                     // ENETDOWN
	KindConnectionAbortedByNetwork        // ENETRESET
	KindNetworkUnreachable                // ENETUNREACH
	KindNoBufferSpaceAvailable            // ENOBUFS
	KindNoMessageAvailableOnStream        // ENODATA
	KindNoSuchDevice                      // ENODEV
	KindNoSuchFileOrDirectory             // ENOENT
	KindExecFormat                        // ENOEXEC
	KindNoLocksAvailable                  // ENOLCK
	KindLinkSevered                       // ENOLINK
	KindNotEnoughSpace                    // ENOMEM
	KindNoMessageOfDesiredType            // ENOMSG
	KindProtocolNotAvailable              // ENOPROTOOPT
	KindNoSpaceOnDevice                   // ENOSPC
	KindNoStreamResourcesAvailable        // ENOSR
	KindResourceNotAStream                // ENOSTR
	KindFunctionNotImplemented            // ENOSYS
	KindSocketNotConnected                // ENOTCONN
	KindNotADirectory                     // ENOTDIR
	KindDirectoryNotEmpty                 // ENOTEMPTY
	KindHostnameNotFound                  // ENOTFOUND
	KindNotASocket                        // ENOTSOCK
	KindOperationNotSupported             // ENOTSUP
	KindInappropriateIOControlOperation   // ENOTTY
	KindNoSuchDeviceOrAddress             // ENXIO
	KindOperationNotSupportedOnSocket     // EOPNOTSUPP
	KindValueTooLarge                     // EOVERFLOW
	KindOperationNotPermitted             // EPERM
	KindBrokenPipe                        // EPIPE
	KindProtocolError                     // EPROTO
	KindProtocolNotSupported              // EPROTONOSUPPORT
	KindWrongProtocolTypeForSocket        // EPROTOTYPE
	KindResultTooLarge                    // ERANGE
	KindReadOnlyFileSystem                // EROFS
	KindInvalidSeekOperation              // ESPIPE
	KindNoSuchProcess                     // ESRCH
	KindStaleFileHandle                   // ESTALE
	KindTimerExpired                      // ETIME
	KindConnectionTimeout                 // ETIMEDOUT
	KindTextFileBusy                      // ETXTBSY
	KindOperationWouldBlock               // EWOULDBLOCK
	KindImproperLink                      // EXDEV

	kindCount
)

type kindSpec struct {
	name    string
	message string
}

var kindSpecs = [kindCount]kindSpec{
	KindUnknown:                           {"ERROR_UNKNOWN", "Unknown error."},
	KindArgumentListTooLong:               {"ERROR_ARGUMENT_LIST_TOO_LONG", "The list of arguments is longer than expected."},
	KindNoAccess:                          {"ERROR_NO_ACCESS", "The operation does not have enough permissions."},
	KindAddressInUse:                      {"ERROR_ADDRESS_IN_USE", "The network address is already in use."},
	KindAddressNotAvailable:               {"ERROR_ADDRESS_NOT_AVAILABLE", "The network address is currently unavailable for use."},
	KindAddressFamilyNotSupported:         {"ERROR_ADDRESS_FAMILY_NOT_SUPPORTED", "The network address family is not supported."},
	KindNoDataTryAgainLater:               {"ERROR_NO_DATA_TRY_AGAIN_LATER", "There is no data available. Try again later."},
	KindSocketPendingConnectionInProgress: {"ERROR_SOCKET_PENDING_CONNECTION_IN_PROGRESS", "The socket already has a pending connection in progress."},
	KindFileDescriptorNotValid:            {"ERROR_FILE_DESCRIPTOR_NOT_VALID", "File descriptor is not valid."},
	KindInvalidDataMessage:                {"ERROR_INVALID_DATA_MESSAGE", "Invalid data message."},
	KindDeviceOrResourceBusy:              {"ERROR_DEVICE_OR_RESOURCE_BUSY", "Device or resource is busy."},
	KindOperationCancelled:                {"ERROR_OPERATION_CANCELLED", "The operation was canceled."},
	KindNoChildProcesses:                  {"ERROR_NO_CHILD_PROCESSES", "There are no child processes."},
	KindNetworkConnectionAborted:          {"ERROR_NETWORK_CONNECTION_ABORTED", "The network connection has been aborted."},
	KindNetworkConnectionRefused:          {"ERROR_NETWORK_CONNECTION_REFUSED", "The network connection has been refused."},
	KindNetworkConnectionReset:            {"ERROR_NETWORK_CONNECTION_RESET", "The network connection has been reset."},
	KindResourceDeadlockAvoided:           {"ERROR_RESOURCE_DEADLOCK_AVOIDED", "A resource deadlock has been avoided."},
	KindDestinationAddressRequired:        {"ERROR_DESTINATION_ADDRESS_REQUIRED", "A destination address is required."},
	KindArgumentOutOfDomain:               {"ERROR_ARGUMENT_OUT_OF_DOMAIN", "An argument is out of the domain of the function."},
	KindDiskQuotaExceeded:                 {"ERROR_DISK_QUOTA_EXCEEDED", "The disk quota has been exceeded."},
	KindFileExists:                        {"ERROR_FILE_EXISTS", "The file already exists."},
	KindInvalidPointerAddress:             {"ERROR_INVALID_POINTER_ADDRESS", "Invalid pointer address."},
	KindFileTooLarge:                      {"ERROR_FILE_TOO_LARGE", "The file is too large."},
	KindHostUnreachable:                   {"ERROR_HOST_UNREACHABLE", "The host is unreachable."},
	KindIdentifierRemoved:                 {"ERROR_IDENTIFIER_REMOVED", "The identifier has been removed."},
	KindIllegalByteSequence:               {"ERROR_ILLEGAL_BYTE_SEQUENCE", "Illegal byte sequence."},
	KindOperationAlreadyInProgress:        {"ERROR_OPERATION_ALREADY_IN_PROGRESS", "An operation is already in progress."},
	KindFunctionCallInterrupted:           {"ERROR_FUNCTION_CALL_INTERRUPTED", "A function call was interrupted."},
	KindInvalidArgument:                   {"ERROR_INVALID_ARGUMENT", "An invalid argument was provided."},
	KindUnspecifiedIOError:                {"ERROR_UNSPECIFIED_IO_ERROR", "Unspecified I/O error."},
	KindSocketConnected:                   {"ERROR_SOCKET_CONNECTED", "The socket is connected."},
	KindPathIsADirectory:                  {"ERROR_PATH_IS_A_DIRECTORY", "The path is a directory."},
	KindTooManySymlinksLevels:             {"ERROR_TOO_MANY_SYMLINKS_LEVELS", "Too many levels of symbolic links in a path."},
	KindTooManyOpenFiles:                  {"ERROR_TOO_MANY_OPEN_FILES", "Too many open files."},
	KindTooManyLinksToFile:                {"ERROR_TOO_MANY_LINKS_TO_FILE", "Too many hard links to the file."},
	KindMessageTooLong:                    {"ERROR_MESSAGE_TOO_LONG", "The provided message is too long."},
	KindMultihopAttempted:                 {"ERROR_MULTIHOP_ATTEMPTED", "A multihop was attempted."},
	KindFilenameTooLong:                   {"ERROR_FILENAME_TOO_LONG", "The filename is too long."},
	KindNetworkIsDown:                     {"ERROR_NETWORK_IS_DOWN", "The network is down."},
	KindConnectionAbortedByNetwork:        {"ERROR_CONNECTION_ABORTED_BY_NETWORK", "The connection has been aborted by the network."},
	KindNetworkUnreachable:                {"ERROR_NETWORK_UNREACHABLE", "The network is unreachable."},
	KindNoBufferSpaceAvailable:            {"ERROR_NO_BUFFER_SPACE_AVAILABLE", "No buffer space is available."},
	KindNoMessageAvailableOnStream:        {"ERROR_NO_MESSAGE_AVAILABLE_ON_STREAM", "No message available on the stream head read queue."},
	KindNoSuchDevice:                      {"ERROR_NO_SUCH_DEVICE", "There is no such device."},
	KindNoSuchFileOrDirectory:             {"ERROR_NO_SUCH_FILE_OR_DIRECTORY", "No such file or directory."},
	KindExecFormat:                        {"ERROR_EXEC_FORMAT", "Exec format error."},
	KindNoLocksAvailable:                  {"ERROR_NO_LOCKS_AVAILABLE", "No locks available."},
	KindLinkSevered:                       {"ERROR_LINK_SEVERED", "A link has been severed."},
	KindNotEnoughSpace:                    {"ERROR_NOT_ENOUGH_SPACE", "Not enough space."},
	KindNoMessageOfDesiredType:            {"ERROR_NO_MESSAGE_OF_DESIRED_TYPE", "No message of the desired type."},
	KindProtocolNotAvailable:              {"ERROR_PROTOCOL_NOT_AVAILABLE", "A given protocol is not available."},
	KindNoSpaceOnDevice:                   {"ERROR_NO_SPACE_ON_DEVICE", "No space available on the device."},
	KindNoStreamResourcesAvailable:        {"ERROR_NO_STREAM_RESOURCES_AVAILABLE", "No stream resources available."},
	KindResourceNotAStream:                {"ERROR_RESOURCE_NOT_A_STREAM", "The resource is not a stream."},
	KindFunctionNotImplemented:            {"ERROR_FUNCTION_NOT_IMPLEMENTED", "Function has not been implemented."},
	KindSocketNotConnected:                {"ERROR_SOCKET_NOT_CONNECTED", "The socket is not connected."},
	KindNotADirectory:                     {"ERROR_NOT_A_DIRECTORY", "The path is not a directory."},
	KindDirectoryNotEmpty:                 {"ERROR_DIRECTORY_NOT_EMPTY", "The directory is not empty."},
	KindHostnameNotFound:                  {"ERROR_HOSTNAME_NOT_FOUND", "The host name was not found."},
	KindNotASocket:                        {"ERROR_NOT_A_SOCKET", "The given item is not a socket."},
	KindOperationNotSupported:             {"ERROR_OPERATION_NOT_SUPPORTED", "A given operation is not supported."},
	KindInappropriateIOControlOperation:   {"ERROR_INAPPROPRIATE_IO_CONTROL_OPERATION", "Inappropriate I/O control operation."},
	KindNoSuchDeviceOrAddress:             {"ERROR_NO_SUCH_DEVICE_OR_ADDRESS", "No such device or address."},
	KindOperationNotSupportedOnSocket:     {"ERROR_OPERATION_NOT_SUPPORTED_ON_SOCKET", "An operation is not supported on the socket."},
	KindValueTooLarge:                     {"ERROR_VALUE_TOO_LARGE", "Value too large to be stored in data type."},
	KindOperationNotPermitted:             {"ERROR_OPERATION_NOT_PERMITTED", "The operation is not permitted."},
	KindBrokenPipe:                        {"ERROR_BROKEN_PIPE", "Broken pipe."},
	KindProtocolError:                     {"ERROR_PROTOCOL_ERROR", "Protocol error."},
	KindProtocolNotSupported:              {"ERROR_PROTOCOL_NOT_SUPPORTED", "Protocol is not supported."},
	KindWrongProtocolTypeForSocket:        {"ERROR_WRONG_PROTOCOL_TYPE_FOR_SOCKET", "Wrong type of protocol for a socket."},
	KindResultTooLarge:                    {"ERROR_RESULT_TOO_LARGE", "Result is too large."},
	KindReadOnlyFileSystem:                {"ERROR_READ_ONLY_FILE_SYSTEM", "The file system is read-only."},
	KindInvalidSeekOperation:              {"ERROR_INVALID_SEEK_OPERATION", "Invalid seek operation."},
	KindNoSuchProcess:                     {"ERROR_NO_SUCH_PROCESS", "No such process."},
	KindStaleFileHandle:                   {"ERROR_STALE_FILE_HANDLE", "The file handle is stale."},
	KindTimerExpired:                      {"ERROR_TIMER_EXPIRED", "The timer expired."},
	KindConnectionTimeout:                 {"ERROR_CONNECTION_TIMEOUT", "The connection timed out."},
	KindTextFileBusy:                      {"ERROR_TEXT_FILE_BUSY", "Text file is busy."},
	KindOperationWouldBlock:               {"ERROR_OPERATION_WOULD_BLOCK", "The operation would block."},
	KindImproperLink:                      {"ERROR_IMPROPER_LINK", "Improper link."},
}

// Valid reports whether k is a member of the catalog.
func (k Kind) Valid() bool {
	return k < kindCount
}

func (k Kind) spec() kindSpec {
	if !k.Valid() {
		return kindSpecs[KindUnknown]
	}
	return kindSpecs[k]
}

// Name returns the kind's unique identifier, e.g. "ERROR_NO_ACCESS".
// Kinds outside the catalog report the identifier of KindUnknown.
func (k Kind) Name() string {
	return k.spec().name
}

// Message returns the fixed human-readable description of the kind.
func (k Kind) Message() string {
	return k.spec().message
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return k.Name()
}

// New returns a new error value of kind k.
func (k Kind) New() *Error {
	return New(k)
}
