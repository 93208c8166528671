/*
Package dxf serializes line segments as DXF entities.

Each segment becomes one LINE record made of ASCII group-code/value pairs: 10/20
for the start point, 11/21 for the end point, every coordinate rendered with
exactly three decimals, and the record closed by group code 0. The entity stream
is meant to sit verbatim between a Document's header and footer.
*/
package dxf
