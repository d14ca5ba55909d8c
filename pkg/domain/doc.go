/*
Package domain contains the core configuration model for the Canopy engine.

It defines the six entity types of a tenant's conversational-application
configuration (Programs, Conversational Forms, CTA Definitions, Conversation
Branches, Action Chips, and Showcase Items), the Collections snapshot that
groups them, and the Finding type used by every validation pass. This package
is kept pure and free of external dependencies like I/O or persistence,
following Hexagonal Architecture principles.

# Key Entities

  - Program: A top-level content grouping. Referenced, never referencing.
  - ConversationalForm: A multi-field data-capture flow tied to a Program.
  - CTADefinition: A call-to-action whose required fields depend on its Action.
  - ConversationBranch: A detection-keyword branch offering CTAs.
  - ActionChip: A conversation entry point (graph root).
  - ShowcaseItem: A promotable item, optionally wired to a CTA.

Entity IDs are unique within their own type's namespace, not globally; every
cross-entity reference is a named string field holding another entity's ID.
*/
package domain
