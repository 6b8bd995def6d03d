/*
Package ports defines the driven ports (interfaces) of the Minerva bot.

These interfaces decouple the conversation logic from external implementations,
allowing the bot to work with various session backends and graph sources.

# Key Interfaces

  - GraphLoader: Responsible for loading the menu Node definitions (literal or file).
  - SessionStore: Responsible for persisting the current node of each user.
*/
package ports
