package rod

// collectStyleSheets walks document.styleSheets in order and returns, per
// sheet, the concatenated cssText of its rules. Reading cssRules of a
// cross-origin sheet throws, those sheets are reported as unreadable.
const collectStyleSheets = `() => JSON.stringify(Array.from(document.styleSheets, (sheet) => {
	const href = sheet.href || ''
	let rules = null
	try {
		rules = sheet.cssRules
	} catch (e) {}
	if (!rules) {
		return {href, css: '', readable: false}
	}
	return {href, css: Array.from(rules, (rule) => rule.cssText).join(''), readable: true}
}))`
