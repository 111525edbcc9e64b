// Package script exposes layout trees to JavaScript through goja.
//
// Scripts see a global `layout` object:
//
//	var body = layout.element("BODY", {width: 10, height: 10, margin: 5});
//	var p = layout.element("P", {height: 5, margin: [5, 0], padding: 5});
//	body.appendChild(p);
//	layout.setRoot(body);
//	console.log(p.x, p.y);
//
// Element options are x, y, width, height, margin, padding (a number or
// one to four numbers in CSS order), display and style. Proxies expose
// every geometry accessor as a read-only property.
package script
