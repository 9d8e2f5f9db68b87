package rulsp

// Version of the interpreter, reported by the CLI.
const Version = "0.2.0"
