// Command minerva runs the Minerva menu chatbot over HTTP, MCP or a terminal.
package main

func main() {
	Execute()
}
