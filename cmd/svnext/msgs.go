package svnext

// Command descriptions
const (
	MsgRootShort = "Keep svn:externals in sync with Maven dependencies"
	MsgRootLong  = `svnext rewrites the svn:externals property of a Subversion directory from a
list of declared Maven dependencies. Each dependency's SCM location is read
from its POM in the local Maven repository and mapped to a local path.
Existing externals are kept; declared ones are added or updated in place.`

	MsgUpdateShort = "Reconcile and commit the svn:externals property"
	MsgUpdateLong  = `Update checks out the configured SCM URL with empty depth, reads its
svn:externals property, merges the declared externals into it, writes the
result to <target>/svn.externals, sets the property from that file and
commits. Nothing is committed when the property is already up to date.`

	MsgShowShort   = "Print the current svn:externals property"
	MsgRenderShort = "Reconcile an externals file offline and print the result"
	MsgRenderLong  = `Render reads svn:externals definitions from --from (or stdin), merges the
declared externals into them and writes the result to stdout. No svn command
is run.`
	MsgGenConfigShort  = "Print a sample svnext.toml"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default: svnext.toml in the current directory)"
	MsgFlagOutput    = "Output format: text, yaml or json"
	MsgFlagDryRun    = "Write the externals file without setting or committing it"
	MsgFlagScmURL    = "Repository URL whose externals are updated"
	MsgFlagTarget    = "Scratch directory for the checkout and externals file"
	MsgFlagMessage   = "Commit message"
	MsgFlagFrom      = "Externals file to reconcile (default: stdin)"
	MsgFlagCommented = "Comment out every value in the generated file"
	MsgFlagManDir    = "Directory the man pages are written to"

	// Errors
	MsgErrNoCommand = "no command specified"
)
