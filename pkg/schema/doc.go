/*
Package schema validates the fields of individual configuration entities.

Each entity type has its own validator returning a FieldErrors map (field
name to human-readable message). Validation is pure and order-independent:
running it twice on identical input yields identical output.

For CTA Definitions and Action Chips, the required-field set is conditioned
on the discriminant field (the action). The pairing is expressed as a rule
table per action rather than branching logic, so adding an action means
adding a table row:

	rules := schema.CTARules[domain.CTAStartForm]
	// rules.Required == []string{"form_id"}

The package also hosts the uniqueness checker. Uniqueness is evaluated
against "existing IDs minus the entity's own prior ID when editing", so
saving an entity without renaming it never self-triggers a duplicate error.

Basic usage:

	vctx := schema.Context{ExistingIDs: ids}
	if errs := schema.ValidateCTA(cta, vctx); len(errs) > 0 {
	    // errs maps field names to messages
	}
*/
package schema
