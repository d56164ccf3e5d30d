/*
Package ports defines the interfaces between the viewer core and its adapters.

The pagination engine only depends on Gate; the selection loop depends on
Catalog and DocumentLoader. Concrete implementations live in pkg/adapters and
pkg/runner.
*/
package ports
