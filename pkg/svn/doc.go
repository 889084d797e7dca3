// Package svn wraps the Subversion command line client.
//
// Every invocation goes through a Runner, which takes an argument list and
// a working directory and returns the captured output. The exit status is
// the only success signal. ExecRunner shells out for real; tests substitute
// a fake Runner.
package svn
