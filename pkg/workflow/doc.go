// Package workflow drives a full externals update against a Subversion
// repository:
//
//  1. check out the repository at empty depth into a scratch directory
//  2. read the current svn:externals property
//  3. reconcile every declaration into it
//  4. write the result to <target>/svn.externals
//  5. set the property from that file and commit
//
// Every step runs synchronously and any failure aborts the run before the
// property is set or committed. Each run starts from a fresh checkout; no
// state is carried between runs.
package workflow
