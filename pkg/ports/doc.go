/*
Package ports defines the interfaces shared between the recipe book core and its adapters.

# Key Interfaces

  - Registry: the validating name → recipe lookup table.

RunRegistryContract is exported so alternative implementations can reuse the same
behavioural checks as the in-memory registry.
*/
package ports
