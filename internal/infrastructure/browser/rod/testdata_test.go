package rod

// Тестовые HTML-шаблоны
const (
	BasicHTML = `<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
	<h1>Hello World</h1>
</body>
</html>`

	InteractiveHTML = `<!DOCTYPE html>
<html>
<body>
	<button id="btn">Click Me</button>
	<div id="result"></div>
	<script>
		document.getElementById('btn').addEventListener('click', function() {
			document.getElementById('result').textContent = 'Clicked!';
		});
	</script>
</body>
</html>`

	// TabsHTML: три видимых таба и один скрытый; таблица появляется только после "Financials".
	TabsHTML = `<!DOCTYPE html>
<html>
<head><title>Markets</title></head>
<body>
	<ul class="tabs">
		<li><button id="tab-overview" class="tab active" data-target="overview">Overview</button></li>
		<li><button class="tab-financials tab" data-target="financials">Financials</button></li>
		<li><button class="tab" style="display:none" data-target="archive">Archive</button></li>
		<li><a href="#" data-target="news">News</a></li>
	</ul>
	<div id="panel">Overview content</div>
	<script>
		const panels = {
			overview: '<p>Overview content</p>',
			financials: '<table id="fin"><tr><th>Revenue</th></tr><tr><td>42</td></tr></table>',
			archive: '<p>Archive</p>',
			news: '<p>News content</p>'
		};
		document.querySelectorAll('[data-target]').forEach(function(el) {
			el.addEventListener('click', function(e) {
				e.preventDefault();
				document.getElementById('panel').innerHTML = panels[el.dataset.target];
			});
		});
	</script>
</body>
</html>`

	EmptyHTML = `<!DOCTYPE html><html><body><p>Nothing to click</p></body></html>`
)
