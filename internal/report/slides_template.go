package report

import "html/template"

// Neon-cyber slideshow page. Six full-viewport slides with scroll
// snapping, a Chart.js trend chart, and keyboard/dot navigation.
var slidesPage = template.Must(template.New("slides").Parse(`<!DOCTYPE html>
<html lang="zh">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>比特币周报 W{{.WeekNum}} · {{.Year}}</title>

  <link rel="preconnect" href="https://fonts.googleapis.com">
  <link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
  <link href="https://fonts.googleapis.com/css2?family=Space+Grotesk:wght@300;400;500;600;700&family=Space+Mono:ital,wght@0,400;0,700;1,400&display=swap" rel="stylesheet">
  <script src="https://cdn.jsdelivr.net/npm/chart.js@4/dist/chart.umd.min.js"></script>

  <style>
    :root {
      --bg-primary:    #050a14;
      --bg-card:       rgba(255,255,255,0.04);
      --cyan:          #00ffc8;
      --cyan-dim:      rgba(0,255,200,0.15);
      --magenta:       #ff00b4;
      --red:           #ff5060;
      --red-dim:       rgba(255,80,96,0.12);
      --text-primary:  #e8f4f8;
      --text-muted:    rgba(232,244,248,0.45);
      --text-dim:      rgba(232,244,248,0.25);
      --font-display:  'Space Grotesk', sans-serif;
      --font-mono:     'Space Mono', monospace;
      --fs-title:  clamp(2.2rem, 5.5vw, 4.5rem);
      --fs-h2:     clamp(1.5rem, 3.5vw, 2.75rem);
      --fs-h3:     clamp(1rem,   2vw,   1.5rem);
      --fs-body:   clamp(0.78rem, 1.3vw, 1rem);
      --fs-small:  clamp(0.65rem, 1vw,   0.8rem);
      --fs-mono:   clamp(0.65rem, 1vw,   0.82rem);
      --fs-tag:    clamp(0.55rem, 0.85vw, 0.72rem);
      --pad:       clamp(1.5rem, 4vw, 4rem);
      --gap:       clamp(0.6rem, 1.5vw, 1.5rem);
      --gap-sm:    clamp(0.3rem, 0.8vw, 0.75rem);
      --border:    1px solid rgba(0,255,200,0.12);
      --border-red:1px solid rgba(255,80,96,0.2);
      --radius:    6px;
      --radius-lg: 12px;
      --ease-expo: cubic-bezier(0.16, 1, 0.3, 1);
      --dur:       0.65s;
    }

    *, *::before, *::after { margin:0; padding:0; box-sizing:border-box; }

    html {
      height: 100%;
      scroll-snap-type: y mandatory;
      scroll-behavior: smooth;
      overflow-x: hidden;
    }

    body {
      font-family: var(--font-display);
      background: var(--bg-primary);
      color: var(--text-primary);
      height: 100%;
      overflow-x: hidden;
    }

    .slide {
      width: 100vw;
      height: 100vh;
      height: 100dvh;
      overflow: hidden;
      scroll-snap-align: start;
      display: flex;
      flex-direction: column;
      justify-content: center;
      position: relative;
      padding: var(--pad);
    }

    .slide-content {
      position: relative;
      z-index: 2;
      flex: 1;
      display: flex;
      flex-direction: column;
      justify-content: center;
      max-height: 100%;
      overflow: hidden;
    }

    .grid-bg {
      position: absolute; inset: 0;
      background-image:
        linear-gradient(rgba(0,255,200,0.035) 1px, transparent 1px),
        linear-gradient(90deg, rgba(0,255,200,0.035) 1px, transparent 1px);
      background-size: 60px 60px;
      pointer-events: none; z-index: 0;
      animation: gridPulse 5s ease-in-out infinite;
    }
    @keyframes gridPulse { 0%,100%{opacity:.6} 50%{opacity:1} }

    .glow-cyan {
      position: absolute;
      width: clamp(300px,40vw,600px); height: clamp(300px,40vw,600px);
      background: radial-gradient(circle, rgba(0,255,200,0.12) 0%, transparent 70%);
      top: calc(-1 * clamp(80px,12vw,150px));
      right: calc(-1 * clamp(80px,12vw,150px));
      pointer-events: none; z-index: 0;
      animation: driftA 7s ease-in-out infinite;
    }
    .glow-magenta {
      position: absolute;
      width: clamp(200px,30vw,450px); height: clamp(200px,30vw,450px);
      background: radial-gradient(circle, rgba(255,0,180,0.08) 0%, transparent 70%);
      bottom: calc(-1 * clamp(50px,8vw,100px));
      left: calc(-1 * clamp(50px,8vw,100px));
      pointer-events: none; z-index: 0;
      animation: driftB 9s ease-in-out infinite;
    }
    @keyframes driftA { 0%,100%{transform:translate(0,0)} 50%{transform:translate(-25px,25px)} }
    @keyframes driftB { 0%,100%{transform:translate(0,0)} 50%{transform:translate(20px,-20px)} }

    .corner {
      position: absolute;
      width: clamp(24px,3vw,44px); height: clamp(24px,3vw,44px);
      border-color: rgba(0,255,200,0.3); border-style: solid; z-index: 1;
    }
    .corner.tl { top: clamp(12px,2vw,24px); left: clamp(12px,2vw,24px); border-width: 2px 0 0 2px; }
    .corner.br { bottom: clamp(12px,2vw,24px); right: clamp(12px,2vw,24px); border-width: 0 2px 2px 0; }

    .tag {
      display: inline-flex; align-items: center; gap: 0.6rem;
      font-family: var(--font-mono); font-size: var(--fs-tag);
      letter-spacing: 0.25em; text-transform: uppercase;
      color: var(--cyan); margin-bottom: clamp(0.75rem,1.8vh,1.8rem);
    }
    .tag::before {
      content: ''; display: inline-block; width: 16px; height: 1px;
      background: var(--cyan); opacity: 0.6;
    }

    h1 { font-size: var(--fs-title); font-weight: 700; line-height: 1.05; letter-spacing: -0.02em; margin-bottom: clamp(0.5rem,1.2vh,1.2rem); }
    h2 { font-size: var(--fs-h2);    font-weight: 700; line-height: 1.1;  letter-spacing: -0.02em; margin-bottom: clamp(0.5rem,1.2vh,1.2rem); }

    .accent  { color: var(--cyan); }
    .danger  { color: var(--red); }
    .muted   { color: var(--text-muted); }
    .up      { color: var(--cyan); }
    .down    { color: var(--red); }

    .subtitle {
      font-size: var(--fs-body); color: var(--text-muted);
      line-height: 1.55; margin-bottom: clamp(0.75rem,1.5vh,1.5rem);
    }

    .mono { font-family: var(--font-mono); font-size: var(--fs-mono); }

    .badge {
      display: inline-flex; align-items: center; gap: 0.5rem;
      padding: 0.35rem 0.85rem; border-radius: var(--radius);
      font-family: var(--font-mono); font-size: var(--fs-mono);
      border: var(--border); background: var(--cyan-dim); color: var(--cyan);
    }
    .badge.red { border: var(--border-red); background: var(--red-dim); color: var(--red); }
    .badges { display: flex; flex-wrap: wrap; gap: 0.6rem; margin-top: clamp(0.75rem,1.5vh,1.5rem); }
    .badge .dot {
      width: 6px; height: 6px; border-radius: 50%;
      background: currentColor; box-shadow: 0 0 8px currentColor;
      animation: blink 1.8s ease-in-out infinite;
    }
    @keyframes blink { 0%,100%{opacity:1} 50%{opacity:.25} }

    .price-table-wrap {
      margin-top: clamp(0.6rem,1.5vh,1.5rem);
      overflow: hidden; border-radius: var(--radius-lg);
      border: var(--border);
    }
    table {
      width: 100%; border-collapse: collapse;
      font-size: var(--fs-body);
    }
    thead th {
      font-family: var(--font-mono); font-size: var(--fs-tag);
      letter-spacing: 0.15em; text-transform: uppercase;
      color: var(--text-muted); padding: clamp(0.4rem,0.8vh,0.75rem) clamp(0.6rem,1vw,1rem);
      background: rgba(255,255,255,0.03); border-bottom: 1px solid rgba(255,255,255,0.06);
      text-align: left;
    }
    tbody tr {
      border-bottom: 1px solid rgba(255,255,255,0.04);
      transition: background 0.15s ease;
    }
    tbody tr:last-child { border-bottom: none; }
    tbody tr:hover { background: rgba(0,255,200,0.03); }
    tbody td {
      padding: clamp(0.35rem,0.7vh,0.65rem) clamp(0.6rem,1vw,1rem);
    }
    tbody td.mono { font-family: var(--font-mono); font-size: var(--fs-mono); }
    tbody td.accent { color: var(--cyan); font-weight: 600; }

    .news-grid {
      display: grid;
      grid-template-columns: repeat(2, 1fr);
      gap: var(--gap);
      margin-top: clamp(0.6rem,1.5vh,1.5rem);
    }
    .news-card {
      background: var(--bg-card); border: var(--border);
      border-radius: var(--radius-lg);
      padding: clamp(0.75rem,1.5vw,1.25rem);
      display: flex; flex-direction: column; gap: var(--gap-sm);
    }
    .news-date {
      font-family: var(--font-mono); font-size: var(--fs-tag);
      color: var(--cyan); letter-spacing: 0.15em;
    }
    .news-title { font-size: var(--fs-h3); font-weight: 600; line-height: 1.2; }
    .news-body  { font-size: var(--fs-small); color: var(--text-muted); line-height: 1.5; flex: 1; }

    .forecast-grid {
      display: grid;
      grid-template-columns: repeat(3, 1fr);
      gap: var(--gap);
      margin-top: clamp(0.6rem,1.5vh,1.5rem);
    }
    .forecast-card {
      background: var(--bg-card); border: var(--border);
      border-radius: var(--radius-lg);
      padding: clamp(0.75rem,1.5vw,1.5rem);
      display: flex; flex-direction: column; gap: var(--gap-sm);
    }
    .forecast-card.highlight {
      border-color: rgba(0,255,200,0.25); background: rgba(0,255,200,0.04);
    }
    .fc-timeframe {
      font-family: var(--font-mono); font-size: var(--fs-tag);
      letter-spacing: 0.2em; text-transform: uppercase; color: var(--cyan);
    }
    .fc-price {
      font-family: var(--font-mono);
      font-size: clamp(1.1rem,2.2vw,1.8rem);
      font-weight: 700; color: var(--text-primary); line-height: 1.1;
    }
    .fc-note { font-size: var(--fs-small); color: var(--text-muted); line-height: 1.4; }

    .summary-list {
      display: flex; flex-direction: column;
      gap: var(--gap-sm);
      margin-top: clamp(0.5rem,1.2vh,1.2rem);
    }
    .summary-item {
      display: flex; gap: 0.8rem; align-items: flex-start;
      padding: clamp(0.5rem,1vw,0.85rem);
      background: var(--bg-card); border: var(--border);
      border-radius: var(--radius); font-size: var(--fs-body);
    }
    .summary-item .s-icon { font-size: clamp(0.9rem,1.5vw,1.1rem); flex-shrink: 0; line-height: 1.4; }
    .summary-item .s-text { color: var(--text-muted); line-height: 1.5; }
    .summary-item .s-text strong { color: var(--text-primary); font-weight: 600; }

    .reveal {
      opacity: 0;
      transform: translateY(16px);
      animation: fadeUp var(--dur) var(--ease-expo) forwards;
    }
    .d1 { animation-delay: 0.05s; }
    .d2 { animation-delay: 0.15s; }
    .d3 { animation-delay: 0.25s; }
    .d4 { animation-delay: 0.35s; }
    .d5 { animation-delay: 0.45s; }
    @keyframes fadeUp {
      to { opacity: 1; transform: translateY(0); }
    }

    #nav-dots {
      position: fixed; right: clamp(12px,2vw,24px); top: 50%;
      transform: translateY(-50%);
      display: flex; flex-direction: column; gap: 8px; z-index: 100;
    }
    .nav-dot {
      width: 7px; height: 7px; border-radius: 50%;
      border: none;
      background: rgba(255,255,255,0.2); cursor: pointer;
      transition: background 0.25s, transform 0.25s;
    }
    .nav-dot.active { background: var(--cyan); transform: scale(1.4); }

    #progress-bar {
      position: fixed; top: 0; left: 0; height: 2px;
      background: linear-gradient(90deg, var(--cyan), var(--magenta));
      z-index: 200; transition: width 0.3s ease;
    }

    #kbd-hint {
      position: fixed; bottom: clamp(12px,2vh,20px); left: 50%;
      transform: translateX(-50%);
      font-family: var(--font-mono); font-size: var(--fs-tag);
      color: var(--text-dim); z-index: 100; white-space: nowrap;
      letter-spacing: 0.1em;
    }

    .chart-toolbar {
      display: flex;
      align-items: center;
      justify-content: space-between;
      flex-wrap: wrap;
      gap: 0.5rem;
      margin-top: clamp(0.3rem, 0.8vh, 0.75rem);
      margin-bottom: clamp(0.3rem, 0.6vh, 0.5rem);
    }
    .chart-timeframes {
      display: flex;
      gap: 0.4rem;
    }
    .tf-btn {
      font-family: var(--font-mono);
      font-size: var(--fs-tag);
      letter-spacing: 0.12em;
      padding: 0.3rem 0.75rem;
      border-radius: var(--radius);
      border: var(--border);
      background: transparent;
      color: var(--text-muted);
      cursor: pointer;
      transition: all 0.2s ease;
    }
    .tf-btn:hover { color: var(--cyan); border-color: rgba(0,255,200,0.3); }
    .tf-btn.active {
      background: var(--cyan-dim);
      border-color: rgba(0,255,200,0.35);
      color: var(--cyan);
    }

    .chart-wrap {
      position: relative;
      flex: 1;
      min-height: 0;
      margin-top: clamp(0.6rem, 1.5vh, 1.5rem);
      border: var(--border);
      border-radius: var(--radius-lg);
      background: rgba(0,255,200,0.02);
      padding: clamp(0.5rem, 1vw, 1rem);
    }
    .chart-wrap canvas {
      display: block;
      width: 100% !important;
      height: 100% !important;
    }
    .chart-legend {
      display: flex; gap: 1.2rem; flex-wrap: wrap;
      margin-top: clamp(0.4rem, 0.8vh, 0.75rem);
    }
    .chart-legend-item {
      display: flex; align-items: center; gap: 0.4rem;
      font-family: var(--font-mono); font-size: var(--fs-tag);
      color: var(--text-muted);
    }
    .chart-legend-item .leg-dot {
      width: 10px; height: 10px; border-radius: 50%; flex-shrink: 0;
    }

    @media (max-width: 768px) {
      .news-grid     { grid-template-columns: 1fr; }
      .forecast-grid { grid-template-columns: 1fr; }
    }
    @media (max-height: 700px) {
      :root { --pad: clamp(1rem,3vw,2.5rem); --gap: clamp(0.4rem,1vw,1rem); --fs-title: clamp(1.8rem,4.5vw,3.5rem); --fs-h2: clamp(1.2rem,2.8vw,2.2rem); }
    }
    @media (prefers-reduced-motion: reduce) {
      *, *::before, *::after { animation-duration: 0.01ms !important; transition-duration: 0.2s !important; }
      html { scroll-behavior: auto; }
    }
  </style>
</head>
<body>

  <div id="progress-bar"></div>
  <nav id="nav-dots"></nav>
  <div id="kbd-hint">↑ ↓ 或空格 导航</div>

  <!-- SLIDE 1 — 封面 -->
  <section class="slide slide-title" id="slide-1" aria-label="封面">
    <div class="grid-bg"></div>
    <div class="glow-cyan"></div>
    <div class="glow-magenta"></div>
    <div class="corner tl"></div>
    <div class="corner br"></div>

    <div class="slide-content">
      <div class="tag reveal d1">BTC · 周报 · W{{.WeekNum}} / {{.Year}}</div>
      <h1 class="reveal d2">
        比特币<br><span class="accent">每周回顾</span>
      </h1>
      <p class="subtitle reveal d3">{{.DateFrom}} – {{.DateTo}} · 本周行情全回顾</p>
      <div class="badges reveal d4">
        <span class="badge"><span class="dot"></span>收盘价 &nbsp;{{.ClosePrice}}</span>
        <span class="badge{{if not .WeeklyUp}} red{{end}}">{{if .WeeklyUp}}▲{{else}}▼{{end}} 周涨跌 {{.WeeklySign}}{{.WeeklyPct}}%</span>
      </div>
    </div>
  </section>

  <!-- SLIDE 2 — 价格走势图 -->
  <section class="slide" id="slide-2" aria-label="价格走势图">
    <div class="grid-bg"></div>
    <div class="glow-cyan"></div>

    <div class="slide-content">
      <div class="tag reveal d1">价格走势图</div>
      <h2 class="reveal d2">BTC/USD <span class="accent">价格走势</span></h2>

      <div class="chart-toolbar reveal d2">
        <div class="chart-timeframes">
          <button class="tf-btn" data-days="7">1W</button>
          <button class="tf-btn active" data-days="30">1M</button>
          <button class="tf-btn" data-days="365">1Y</button>
        </div>
        <div class="chart-legend">
          <span class="chart-legend-item">
            <span class="leg-dot" style="background:#00ffc8;box-shadow:0 0 6px rgba(0,255,200,0.5);"></span>实际价格
          </span>
          <span class="chart-legend-item">
            <span class="leg-dot" style="background:#ffffff;border:2px solid #00ffc8;"></span>摘要记录
          </span>
          <span class="chart-legend-item">
            <span class="leg-dot" style="background:#ff00b4;box-shadow:0 0 6px rgba(255,0,180,0.4);"></span>预测中位数
          </span>
        </div>
      </div>

      <div class="chart-wrap reveal d3">
        <canvas id="priceChart"></canvas>
      </div>
    </div>
  </section>

  <!-- SLIDE 3 — 价格回顾 -->
  <section class="slide" id="slide-3" aria-label="价格回顾">
    <div class="grid-bg"></div>
    <div class="glow-cyan"></div>

    <div class="slide-content">
      <div class="tag reveal d1">价格回顾</div>
      <h2 class="reveal d2">
        本周走势：
        <span class="accent">{{.OpenPrice}}</span>
        →
        <span class="{{if .WeeklyUp}}accent{{else}}danger{{end}}">{{.ClosePrice}}</span>
      </h2>
      <p class="subtitle reveal d3">每日收盘价与涨跌幅</p>

      <div class="price-table-wrap reveal d4">
        <table>
          <thead>
            <tr>
              <th>日期</th>
              <th>价格 (USD)</th>
              <th>24h 涨跌</th>
            </tr>
          </thead>
          <tbody>
            {{range .PriceRows}}<tr>
              <td class="mono">{{.Date}}</td>
              <td class="mono accent">{{.Price}}</td>
              <td class="mono {{.Class}}">{{.Change}}</td>
            </tr>
            {{end}}
          </tbody>
        </table>
      </div>
    </div>
  </section>

  <!-- SLIDE 4 — 市场新闻 -->
  <section class="slide" id="slide-4" aria-label="市场新闻">
    <div class="grid-bg"></div>
    <div class="glow-magenta"></div>

    <div class="slide-content">
      <div class="tag reveal d1">市场新闻</div>
      <h2 class="reveal d2">本周<span class="accent">重要事件</span></h2>
      <p class="subtitle reveal d3">影响行情的关键新闻汇总</p>

      <div class="news-grid reveal d4">
        {{if .News}}{{range .News}}<div class="news-card reveal">
          <div class="news-date mono">{{.Date}}</div>
          <div class="news-title">{{.Title}}</div>
          <div class="news-body">{{.Body}}</div>
        </div>
        {{end}}{{else}}<p class="muted">本周暂无收录新闻。</p>{{end}}
      </div>
    </div>
  </section>

  <!-- SLIDE 5 — 预测展望 -->
  <section class="slide" id="slide-5" aria-label="预测展望">
    <div class="grid-bg"></div>
    <div class="glow-cyan"></div>

    <div class="slide-content">
      <div class="tag reveal d1">预测展望</div>
      <h2 class="reveal d2">下周 · 下月 · <span class="accent">年底目标</span></h2>
      <p class="subtitle reveal d3">基于最新摘要的价格预测（截至 {{.LatestDate}}）</p>

      <div class="forecast-grid reveal d4">
        <div class="forecast-card highlight">
          <div class="fc-timeframe">1 周预测</div>
          <div class="fc-price">{{.FC1W}}</div>
          <div class="fc-note">短期目标价，波动区间较窄</div>
        </div>
        <div class="forecast-card">
          <div class="fc-timeframe">1 月预测</div>
          <div class="fc-price">{{.FC1M}}</div>
          <div class="fc-note">中期目标，参考宏观走势</div>
        </div>
        <div class="forecast-card">
          <div class="fc-timeframe">年底目标</div>
          <div class="fc-price">{{.FC1Y}}</div>
          <div class="fc-note">机构共识宽区间，仅供参考</div>
        </div>
      </div>
    </div>
  </section>

  <!-- SLIDE 6 — 白话总结 -->
  <section class="slide" id="slide-6" aria-label="白话总结">
    <div class="grid-bg"></div>
    <div class="glow-magenta"></div>
    <div class="corner tl"></div>
    <div class="corner br"></div>

    <div class="slide-content">
      <div class="tag reveal d1">一句话总结</div>
      <h2 class="reveal d2">这周<span class="accent">说明了什么？</span></h2>

      <div class="summary-list reveal d3">
        <div class="summary-item">
          <span class="s-icon">{{if .WeeklyUp}}📈{{else}}📉{{end}}</span>
          <span class="s-text">
            <strong>本周表现：</strong>
            BTC 从 {{.OpenPrice}} {{if .WeeklyUp}}上涨{{else}}下跌{{end}} 至 {{.ClosePrice}}，
            周涨跌幅 <strong class="{{if .WeeklyUp}}up{{else}}down{{end}}">{{.WeeklySign}}{{.WeeklyPct}}%</strong>。
          </span>
        </div>
        <div class="summary-item">
          <span class="s-icon">🔮</span>
          <span class="s-text">
            <strong>下周展望：</strong>
            最新预测目标价 <strong>{{.FC1W}}</strong>，关注宏观数据与链上资金流向。
          </span>
        </div>
        {{if .Plain}}<div class="summary-item">
          <span class="s-icon">💬</span>
          <span class="s-text">{{.Plain}}</span>
        </div>{{end}}
      </div>

      <div class="muted mono reveal d5" style="margin-top: clamp(1rem,2vh,2rem); font-size: var(--fs-tag);">
        生成时间: {{.GeneratedAt}} &nbsp;·&nbsp; 数据来源: 每日摘要文件
      </div>
    </div>
  </section>

  <script>
    // Chart.js price trend with 1W / 1M / 1Y toggle
    (function() {
      var histLabels = {{.HistLabels}};
      var histValues = {{.HistValues}};

      var digestDates  = {{.DigestDates}};
      var digestPrices = {{.DigestPrices}};

      var fcPoints = {{.FcPoints}};

      var fallbackMin = {{.ChartMin}};
      var fallbackMax = {{.ChartMax}};

      function sliceByDays(days) {
        if (!histLabels.length) return { labels: [], values: [] };
        var cutoff = new Date();
        cutoff.setDate(cutoff.getDate() - days);
        var idx = histLabels.findIndex(function(d) { return new Date(d) >= cutoff; });
        var start = idx === -1 ? 0 : idx;
        return { labels: histLabels.slice(start), values: histValues.slice(start) };
      }

      function buildDigestDataset(viewLabels) {
        return viewLabels.map(function(lbl) {
          var idx = digestDates.indexOf(lbl);
          return idx !== -1 ? digestPrices[idx] : null;
        });
      }

      function yRange(values) {
        var valid = values.filter(function(v) { return v !== null && v !== undefined; });
        if (!valid.length) return { min: fallbackMin, max: fallbackMax };
        return {
          min: Math.floor(Math.min.apply(null, valid) * 0.95),
          max: Math.ceil(Math.max.apply(null, valid) * 1.04)
        };
      }

      // Extend the view with forecast points past today, then build the
      // forecast series aligned to the extended labels.
      function extendWithForecasts(labels, values) {
        var extLabels = labels.slice();
        var extValues = values.slice();
        fcPoints.forEach(function(pt) {
          if (extLabels.indexOf(pt.date) === -1) {
            extLabels.push(pt.date);
            extValues.push(null);
          }
        });
        var fcSeries = extLabels.map(function(lbl) {
          var p = null;
          fcPoints.forEach(function(x) { if (x.date === lbl) p = x; });
          return p ? p.price : null;
        });
        return { labels: extLabels, values: extValues, forecasts: fcSeries };
      }

      var current = sliceByDays(30);
      var ext = extendWithForecasts(current.labels, current.values);

      var ctx = document.getElementById('priceChart').getContext('2d');

      var grad = ctx.createLinearGradient(0, 0, 0, 380);
      grad.addColorStop(0, 'rgba(0,255,200,0.22)');
      grad.addColorStop(1, 'rgba(0,255,200,0.01)');

      var initRange = yRange(ext.values.concat(ext.forecasts.filter(Boolean)));

      var chart = new Chart(ctx, {
        type: 'line',
        data: {
          labels: ext.labels,
          datasets: [
            {
              label: '实际价格',
              data: ext.values,
              borderColor: '#00ffc8',
              borderWidth: 2,
              pointRadius: 0,
              pointHoverRadius: 5,
              pointHoverBackgroundColor: '#00ffc8',
              fill: true,
              backgroundColor: grad,
              tension: 0.3,
              spanGaps: false,
              order: 3
            },
            {
              label: '摘要记录',
              data: buildDigestDataset(ext.labels),
              borderColor: 'transparent',
              backgroundColor: '#ffffff',
              pointBackgroundColor: '#050a14',
              pointBorderColor: '#00ffc8',
              pointBorderWidth: 2,
              pointRadius: 5,
              pointHoverRadius: 7,
              fill: false,
              showLine: false,
              spanGaps: false,
              order: 1
            },
            {
              label: '预测中位数',
              data: ext.forecasts,
              borderColor: '#ff00b4',
              borderWidth: 2,
              borderDash: [5, 4],
              pointBackgroundColor: '#ff00b4',
              pointBorderColor: '#050a14',
              pointBorderWidth: 2,
              pointRadius: 5,
              pointHoverRadius: 7,
              fill: false,
              tension: 0.2,
              spanGaps: true,
              order: 2
            }
          ]
        },
        options: {
          responsive: true,
          maintainAspectRatio: false,
          animation: { duration: 600, easing: 'easeOutQuart' },
          plugins: {
            legend: { display: false },
            tooltip: {
              mode: 'index',
              intersect: false,
              backgroundColor: 'rgba(5,10,20,0.93)',
              borderColor: 'rgba(0,255,200,0.25)',
              borderWidth: 1,
              titleColor: '#00ffc8',
              bodyColor: '#e8f4f8',
              titleFont: { family: "'Space Mono', monospace", size: 10 },
              bodyFont:  { family: "'Space Mono', monospace", size: 11 },
              padding: 10,
              callbacks: {
                title: function(items) { return items[0] ? items[0].label : ''; },
                label: function(item) {
                  if (item.parsed.y === null) return null;
                  var names = ['BTC', '摘要', '预测'];
                  return ' ' + names[item.datasetIndex] + ': $' + item.parsed.y.toLocaleString();
                }
              }
            }
          },
          scales: {
            x: {
              grid: { color: 'rgba(0,255,200,0.05)', drawBorder: false },
              ticks: {
                color: 'rgba(232,244,248,0.4)',
                font: { family: "'Space Mono', monospace", size: 10 },
                maxTicksLimit: 8,
                maxRotation: 0
              }
            },
            y: {
              min: initRange.min,
              max: initRange.max,
              position: 'right',
              grid: { color: 'rgba(0,255,200,0.05)', drawBorder: false },
              ticks: {
                color: 'rgba(232,244,248,0.4)',
                font: { family: "'Space Mono', monospace", size: 10 },
                callback: function(v) { return '$' + (v / 1000).toFixed(0) + 'K'; },
                maxTicksLimit: 6
              }
            }
          }
        }
      });

      document.querySelectorAll('.tf-btn').forEach(function(btn) {
        btn.addEventListener('click', function() {
          document.querySelectorAll('.tf-btn').forEach(function(b) { b.classList.remove('active'); });
          btn.classList.add('active');

          var days = parseInt(btn.dataset.days, 10);
          var sliced = sliceByDays(days);

          // forecast runway only makes sense on the short views
          var view = days <= 30
            ? extendWithForecasts(sliced.labels, sliced.values)
            : { labels: sliced.labels, values: sliced.values,
                forecasts: sliced.labels.map(function() { return null; }) };

          var rng = yRange(view.values.filter(Boolean).concat(view.forecasts.filter(Boolean)));

          chart.data.labels           = view.labels;
          chart.data.datasets[0].data = view.values;
          chart.data.datasets[1].data = buildDigestDataset(view.labels);
          chart.data.datasets[2].data = view.forecasts;
          chart.options.scales.y.min  = rng.min;
          chart.options.scales.y.max  = rng.max;
          chart.update('active');
        });
      });
    })();

    // Navigation
    var slides = Array.prototype.slice.call(document.querySelectorAll('.slide'));
    var navDots = document.getElementById('nav-dots');
    var progressBar = document.getElementById('progress-bar');

    slides.forEach(function(slide, i) {
      var dot = document.createElement('button');
      dot.className = 'nav-dot';
      dot.setAttribute('aria-label', '幻灯片 ' + (i + 1));
      dot.addEventListener('click', function() { slide.scrollIntoView({ behavior: 'smooth' }); });
      navDots.appendChild(dot);
    });

    var dots = Array.prototype.slice.call(navDots.querySelectorAll('.nav-dot'));

    function updateNav() {
      var scrollTop = document.documentElement.scrollTop || document.body.scrollTop;
      var totalH = document.documentElement.scrollHeight - window.innerHeight;
      var pct = totalH > 0 ? (scrollTop / totalH) * 100 : 0;
      progressBar.style.width = pct + '%';

      var idx = Math.round(scrollTop / window.innerHeight);
      dots.forEach(function(d, i) { d.classList.toggle('active', i === idx); });
    }

    document.addEventListener('scroll', updateNav, { passive: true });
    updateNav();

    document.addEventListener('keydown', function(e) {
      var idx = Math.round((document.documentElement.scrollTop || document.body.scrollTop) / window.innerHeight);
      if (e.key === 'ArrowDown' || e.key === ' ') {
        e.preventDefault();
        if (idx < slides.length - 1) slides[idx + 1].scrollIntoView({ behavior: 'smooth' });
      } else if (e.key === 'ArrowUp') {
        e.preventDefault();
        if (idx > 0) slides[idx - 1].scrollIntoView({ behavior: 'smooth' });
      }
    });
  </script>

</body>
</html>
`))
