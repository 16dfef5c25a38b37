// Package generator is the plug-in surface of clonebench: output-producing
// units ("generators") are registered under a name and looked up by the CLI
// when the user invokes `clonebench run <name>`.
package generator
