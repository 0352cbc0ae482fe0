package main

// Valid export formats.
var validFormats = []string{"json", "csv", "markdown"}

// Valid --on-conflict values for import.
var validConflictStrategies = []string{"skip", "overwrite"}

// Commands typed in the chat REPL that end the session.
var chatExitCommands = []string{"exit", "quit"}
