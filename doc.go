// Package argscan parses command line arguments and other small formatted
// texts with compiler style error reporting. Failed parses return a
// *diag.Error that knows the whole argument list, the offending argument
// and the byte span within it, and renders as a multi line message with a
// caret pointing at the problem.
//
// The scan subpackage does the actual scanning: readers over strings,
// byte buffers, streams and rune sequences, per type decoders driven by a
// small format language, and a pattern engine composing them. This
// package adds the argument cursor (Args), whole argument parsing
// (ParseArg and the key/value helpers), runtime pattern compilation
// (Compile, Parsef) and case folded variant tables for enumerations
// (Variants).
//
//	args := argscan.OSArgs()
//	for arg, ok := args.Next(); ok; arg, ok = args.Next() {
//		switch arg {
//		case "-p", "--port":
//			port, err := argscan.NextArg[uint16](args)
//			...
//		default:
//			return args.ErrUnknownArgument()
//		}
//	}
package argscan
