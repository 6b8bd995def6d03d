/*
Package domain contains the core domain models of the Minerva menu bot.

It defines the fundamental entities of the conversation, such as menu Nodes,
user Sessions and the Reply returned for every message. This package is kept
pure and free of external dependencies like I/O or persistence.

# Key Entities

  - Node: A menu state with a display message and the accepted input tokens.
  - Session: The node a given user is currently positioned at.
  - Reply: The outcome of a single message (resulting node and text to display).
  - LifecycleHooks: Callbacks the host can register to observe transitions.
*/
package domain
