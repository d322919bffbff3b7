package site

// pageTemplate is the Go html/template for the single portfolio page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en" class="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Name}}</title>
  <meta name="description" content="{{.Tagline}}">
  <link rel="stylesheet" href="{{.BasePath}}static/style.css">
</head>
<body data-fixed-offset="{{.FixedOffset}}" data-sections="{{.SectionIDs}}"{{if .LiveReload}} data-livereload="/ws/reload"{{end}}>
  <nav class="navbar">
    <div class="nav-inner">
      <a href="#home" class="brand"><span class="brand-spark">&#10022;</span>{{.Brand}}</a>
      <div class="nav-links">
        {{range .Nav}}<a href="{{.Anchor}}" data-section="{{.ID}}" class="nav-link{{if .Active}} active{{end}}">{{.Title}}</a>
        {{end}}<button type="button" class="theme-toggle" id="theme-toggle" aria-label="Toggle theme">
          <span class="sun-icon">&#9728;</span><span class="moon-icon">&#9790;</span>
        </button>
      </div>
      <button type="button" class="menu-toggle" id="menu-toggle" aria-label="Toggle menu" aria-expanded="false">
        <span></span><span></span><span></span>
      </button>
    </div>
    <div class="mobile-menu" id="mobile-menu" hidden>
      {{range .Nav}}<a href="{{.Anchor}}" data-section="{{.ID}}" class="mobile-link{{if .Active}} active{{end}}">{{.Title}}</a>
      {{end}}
    </div>
  </nav>

  <section id="home" class="hero">
    <div class="orbs" aria-hidden="true">
      <div class="orb orb-blue"></div>
      <div class="orb orb-purple"></div>
      <div class="orb orb-cyan"></div>
    </div>
    <div class="hero-content">
      <h1 class="gradient-text">{{.Name}}</h1>
      <p class="tagline">{{.Tagline}}</p>
      <div class="hero-actions">
        <a href="#projects" class="btn btn-primary">Explore Projects</a>
        <a href="#contact" class="btn btn-outline">Get In Touch</a>
      </div>
    </div>
    {{range .Particles}}<div class="particle" aria-hidden="true" style="left: {{.Left}}%; top: {{.Top}}%; animation-delay: {{.Delay}}s; animation-duration: {{.Duration}}s"></div>
    {{end}}
  </section>

  <section id="about" class="section">
    <div class="container">
      <div class="section-header">
        <h2>About Me</h2>
        <div class="divider"></div>
      </div>
      <div class="grid-2">
        <div>
          <h3>{{.Headline}}</h3>
          {{range .About}}<div class="prose">{{.}}</div>
          {{end}}
          <div class="chips">
            {{range .Skills}}<span class="chip">{{.}}</span>
            {{end}}
          </div>
        </div>
        <div class="card philosophy">
          <div class="icon-circle">&lt;/&gt;</div>
          <h4>Tech Philosophy</h4>
          <p>{{.Philosophy}}</p>
        </div>
      </div>
    </div>
  </section>

  <section id="projects" class="section section-alt">
    <div class="container">
      <div class="section-header">
        <h2>Featured Projects</h2>
        <div class="divider"></div>
        {{if .ProjectsIntro}}<p class="muted">{{.ProjectsIntro}}</p>{{end}}
      </div>
      <div class="grid-3">
        {{range .Projects}}<article class="card project">
          {{if .Image}}<div class="project-image"><img src="{{.Image}}" alt="{{.Title}}" loading="lazy"></div>{{end}}
          <h3>{{.Title}}</h3>
          <div class="prose muted">{{.Description}}</div>
          <div class="chips">
            {{range .Tech}}<span class="chip chip-small">{{.}}</span>
            {{end}}
          </div>
          {{if .URL}}<a href="{{.URL}}" class="btn btn-ghost" rel="noopener">View Project</a>{{else}}<button type="button" class="btn btn-ghost" disabled>View Project</button>{{end}}
        </article>
        {{end}}
      </div>
    </div>
  </section>

  <section id="contact" class="section">
    <div class="container narrow">
      <div class="section-header">
        <h2>Get In Touch</h2>
        <div class="divider"></div>
        <p class="muted">Have a project in mind? Let's create something amazing together.</p>
      </div>
      <div class="grid-2">
        <div>
          <h3>Let's Connect</h3>
          <p class="muted">{{.ContactIntro}}</p>
          <ul class="contact-list">
            {{if .Email}}<li><span class="icon-circle small">@</span><a href="mailto:{{.Email}}">{{.Email}}</a></li>{{end}}
            {{if .Website}}<li><span class="icon-circle small">&#127760;</span><span>{{.Website}}</span></li>{{end}}
          </ul>
          <div class="socials">
            <a href="{{.GitHub}}" class="social" aria-label="GitHub">GH</a>
            <a href="{{.LinkedIn}}" class="social" aria-label="LinkedIn">in</a>
          </div>
        </div>
        <form class="card contact-form" id="contact-form" action="/api/contact" method="post" novalidate>
          <label for="contact-name">Name</label>
          <input id="contact-name" name="name" type="text" placeholder="Your name" required>
          <label for="contact-email">Email</label>
          <input id="contact-email" name="email" type="email" placeholder="your.email@example.com" required>
          <label for="contact-message">Message</label>
          <textarea id="contact-message" name="message" rows="5" placeholder="Your message..." required></textarea>
          <button type="submit" class="btn btn-primary btn-block">Send Message</button>
          <p class="form-status" id="form-status" role="status" aria-live="polite"></p>
        </form>
      </div>
    </div>
  </section>

  <footer class="footer">
    <div class="socials">
      <a href="{{.GitHub}}" class="social" aria-label="GitHub">GH</a>
      <a href="{{.LinkedIn}}" class="social" aria-label="LinkedIn">in</a>
      {{if .Email}}<a href="mailto:{{.Email}}" class="social" aria-label="Email">@</a>{{end}}
    </div>
    <p class="muted">&copy; {{.Year}} {{.Name}}. All rights reserved.</p>
  </footer>

  <script src="{{.BasePath}}static/app.js"></script>
</body>
</html>`

// cssContent is the stylesheet for the page.
const cssContent = `/* ============ Variables ============ */
:root {
  --bg: linear-gradient(135deg, #111827 0%, #1e3a8a 50%, #581c87 100%);
  --text: #ffffff;
  --text-muted: #9ca3af;
  --accent: #60a5fa;
  --accent-2: #a855f7;
  --glass: rgba(255, 255, 255, 0.1);
  --glass-border: rgba(255, 255, 255, 0.2);
  --nav-bg: rgba(0, 0, 0, 0.3);
  --chip-bg: rgba(30, 58, 138, 0.5);
  --nav-height: 64px;
}

html.light {
  --bg: linear-gradient(135deg, #f8fafc 0%, #dbeafe 50%, #f3e8ff 100%);
  --text: #111827;
  --text-muted: #4b5563;
  --accent: #2563eb;
  --accent-2: #7c3aed;
  --glass: rgba(255, 255, 255, 0.7);
  --glass-border: rgba(17, 24, 39, 0.1);
  --nav-bg: rgba(255, 255, 255, 0.7);
  --chip-bg: rgba(191, 219, 254, 0.8);
}

/* ============ Base ============ */
* { box-sizing: border-box; margin: 0; padding: 0; }
html { scroll-behavior: smooth; }
body {
  min-height: 100vh;
  background: var(--bg);
  background-attachment: fixed;
  color: var(--text);
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
  line-height: 1.6;
  overflow-x: hidden;
}
a { color: inherit; text-decoration: none; }
img { max-width: 100%; display: block; }
.muted { color: var(--text-muted); }
.container { max-width: 72rem; margin: 0 auto; padding: 0 1rem; }
.container.narrow { max-width: 56rem; }

/* ============ Navigation ============ */
.navbar {
  position: fixed; top: 0; width: 100%; z-index: 50;
  background: var(--nav-bg);
  backdrop-filter: blur(12px);
  border-bottom: 1px solid var(--glass-border);
}
.nav-inner {
  max-width: 80rem; margin: 0 auto; padding: 0 1rem;
  height: var(--nav-height);
  display: flex; align-items: center; justify-content: space-between;
}
.brand { font-size: 1.25rem; font-weight: 700; display: flex; gap: 0.5rem; align-items: center; }
.brand-spark { color: var(--accent); animation: pulse 2s ease-in-out infinite; }
.nav-links { display: flex; align-items: center; gap: 2rem; }
.nav-link { transition: color 0.2s; }
.nav-link:hover, .nav-link.active { color: var(--accent); }
.theme-toggle {
  border: 0; cursor: pointer; color: inherit;
  padding: 0.5rem; border-radius: 9999px; background: var(--glass);
}
html.dark .moon-icon, html.light .sun-icon { display: none; }
.menu-toggle { display: none; background: none; border: 0; cursor: pointer; padding: 0.5rem; }
.menu-toggle span { display: block; width: 22px; height: 2px; margin: 4px 0; background: var(--text); }
.mobile-menu { padding: 0.5rem 0.75rem 0.75rem; background: var(--nav-bg); }
.mobile-link { display: block; padding: 0.5rem 0.75rem; border-radius: 0.375rem; }
.mobile-link.active { background: var(--chip-bg); color: var(--accent); }

/* ============ Hero ============ */
.hero {
  min-height: 100vh; position: relative; overflow: hidden;
  display: flex; align-items: center; justify-content: center;
  padding-top: var(--nav-height);
}
.orb { position: absolute; border-radius: 9999px; filter: blur(64px); animation: pulse 4s ease-in-out infinite; }
.orb-blue { top: 25%; left: 25%; width: 16rem; height: 16rem; background: rgba(59, 130, 246, 0.1); }
.orb-purple { bottom: 33%; right: 25%; width: 18rem; height: 18rem; background: rgba(168, 85, 247, 0.1); animation-delay: 1s; }
.orb-cyan { top: 33%; right: 33%; width: 12rem; height: 12rem; background: rgba(6, 182, 212, 0.1); animation-delay: 0.5s; }
.hero-content { position: relative; z-index: 10; text-align: center; max-width: 56rem; padding: 0 1rem; animation: rise 0.8s ease-out both; }
.gradient-text {
  font-size: clamp(3rem, 8vw, 4.5rem); font-weight: 700; margin-bottom: 1.5rem;
  background: linear-gradient(90deg, var(--accent), var(--accent-2));
  -webkit-background-clip: text; background-clip: text; color: transparent;
}
.tagline { font-size: clamp(1.25rem, 3vw, 1.5rem); margin-bottom: 2rem; color: var(--text-muted); }
.hero-actions { display: flex; flex-wrap: wrap; gap: 1rem; justify-content: center; }
.particle {
  position: absolute; width: 4px; height: 4px; border-radius: 9999px;
  background: rgba(255, 255, 255, 0.3);
  animation-name: float; animation-timing-function: ease-in-out; animation-iteration-count: infinite;
}

/* ============ Buttons ============ */
.btn {
  display: inline-block; padding: 0.75rem 2rem; border-radius: 9999px; font-weight: 500;
  border: 0; cursor: pointer; color: inherit; font-size: 1rem; transition: all 0.2s;
}
.btn-primary { background: linear-gradient(90deg, #2563eb, #9333ea); color: #fff; }
.btn-primary:hover { transform: scale(1.05); }
.btn-primary[disabled] { opacity: 0.6; cursor: wait; transform: none; }
.btn-outline { border: 2px solid var(--glass-border); background: transparent; }
.btn-outline:hover, .btn-ghost:hover { background: var(--glass); }
.btn-ghost { width: 100%; border-radius: 0.5rem; padding: 0.5rem; background: var(--glass); text-align: center; }
.btn-block { width: 100%; border-radius: 0.5rem; }

/* ============ Sections ============ */
.section { padding: 5rem 0; position: relative; }
.section-alt { background: rgba(0, 0, 0, 0.2); }
.section-header { text-align: center; margin-bottom: 4rem; }
.section-header h2 { font-size: 2.25rem; margin-bottom: 1rem; }
.section-header p { max-width: 42rem; margin: 1rem auto 0; }
.divider { width: 5rem; height: 4px; margin: 0 auto; background: linear-gradient(90deg, #3b82f6, #a855f7); }
.grid-2 { display: grid; grid-template-columns: repeat(2, 1fr); gap: 3rem; align-items: center; }
.grid-3 { display: grid; grid-template-columns: repeat(3, 1fr); gap: 2rem; }
h3 { font-size: 1.5rem; margin-bottom: 1rem; }
.prose p { margin-bottom: 1rem; }
.prose a { color: var(--accent); text-decoration: underline; }
.chips { display: flex; flex-wrap: wrap; gap: 0.5rem; margin: 1.5rem 0 1rem; }
.chip { padding: 0.25rem 0.75rem; border-radius: 9999px; background: var(--chip-bg); font-size: 0.875rem; }
.chip-small { border-radius: 0.25rem; font-size: 0.75rem; padding: 0.25rem 0.5rem; }

/* ============ Cards ============ */
.card {
  background: var(--glass); backdrop-filter: blur(10px);
  border: 1px solid var(--glass-border); border-radius: 1rem; padding: 1.5rem;
  transition: border-color 0.3s, transform 0.3s;
}
.card:hover { border-color: rgba(255, 255, 255, 0.4); }
.project:hover { transform: perspective(800px) rotateX(2deg) translateY(-4px); }
.project-image { overflow: hidden; border-radius: 0.75rem; margin-bottom: 1rem; }
.project-image img { width: 100%; height: 12rem; object-fit: cover; transition: transform 0.5s; }
.project:hover .project-image img { transform: scale(1.1); }
.philosophy { min-height: 300px; display: flex; flex-direction: column; align-items: center; justify-content: center; text-align: center; padding: 2rem; }
.icon-circle {
  display: inline-flex; align-items: center; justify-content: center;
  width: 5rem; height: 5rem; margin-bottom: 1rem; border-radius: 9999px;
  background: rgba(59, 130, 246, 0.2); color: var(--accent); font-size: 1.5rem; font-weight: 700;
}
.icon-circle.small { width: 2.75rem; height: 2.75rem; margin: 0; font-size: 1rem; }

/* ============ Contact ============ */
.contact-list { list-style: none; margin: 2rem 0 1.5rem; }
.contact-list li { display: flex; align-items: center; gap: 1rem; margin-bottom: 1rem; }
.socials { display: flex; gap: 1.5rem; }
.social { display: inline-flex; align-items: center; justify-content: center; width: 2.75rem; height: 2.75rem; border-radius: 9999px; background: var(--glass); font-weight: 700; }
.social:hover { color: var(--accent); }
.contact-form { padding: 2rem; }
.contact-form label { display: block; font-size: 0.875rem; font-weight: 500; margin-bottom: 0.5rem; }
.contact-form input, .contact-form textarea {
  width: 100%; margin-bottom: 1.5rem; padding: 0.75rem 1rem; border-radius: 0.5rem;
  background: var(--glass); border: 1px solid var(--glass-border); color: inherit; font: inherit;
}
.contact-form input:focus, .contact-form textarea:focus { outline: 2px solid #3b82f6; border-color: transparent; }
.form-status { min-height: 1.5rem; margin-top: 1rem; text-align: center; }
.form-status.success { color: #4ade80; }
.form-status.error { color: #f87171; }

/* ============ Footer ============ */
.footer { padding: 2rem 0; border-top: 1px solid var(--glass-border); text-align: center; }
.footer .socials { justify-content: center; margin-bottom: 1rem; }

/* ============ Animation ============ */
@keyframes float { 0%, 100% { transform: translateY(0); } 50% { transform: translateY(-10px); } }
@keyframes pulse { 0%, 100% { opacity: 0.5; } 50% { opacity: 1; } }
@keyframes rise { from { opacity: 0; transform: translateY(20px); } to { opacity: 1; transform: none; } }
@media (prefers-reduced-motion: reduce) {
  *, *::before, *::after { animation: none !important; transition: none !important; }
}

/* ============ Responsive ============ */
@media (max-width: 1024px) { .grid-3 { grid-template-columns: repeat(2, 1fr); } }
@media (max-width: 768px) {
  .nav-links { display: none; }
  .menu-toggle { display: block; }
  .grid-2, .grid-3 { grid-template-columns: 1fr; }
}
`

// jsContent drives the page: active-section tracking, menu and theme
// toggles, contact form submission and optional live reload.
const jsContent = `(function () {
  'use strict';

  var body = document.body;
  var root = document.documentElement;

  // ---- Active section tracking ----
  var fixedOffset = parseInt(body.getAttribute('data-fixed-offset'), 10) || 0;
  var sections = (body.getAttribute('data-sections') || '').split(',').filter(Boolean);
  var active = sections[0];

  function highlight(id) {
    document.querySelectorAll('[data-section]').forEach(function (link) {
      link.classList.toggle('active', link.getAttribute('data-section') === id);
    });
  }

  function onScroll() {
    var position = window.scrollY + fixedOffset;
    var next = active;
    sections.forEach(function (id) {
      var el = document.getElementById(id);
      if (el && el.offsetTop <= position) {
        next = id;
      }
    });
    if (next !== active) {
      active = next;
      highlight(active);
    }
  }

  window.addEventListener('scroll', onScroll, { passive: true });
  window.addEventListener('pagehide', function () {
    window.removeEventListener('scroll', onScroll);
  });

  // ---- Mobile menu ----
  var menuToggle = document.getElementById('menu-toggle');
  var mobileMenu = document.getElementById('mobile-menu');

  function setMenu(open) {
    mobileMenu.hidden = !open;
    menuToggle.setAttribute('aria-expanded', String(open));
  }

  if (menuToggle && mobileMenu) {
    menuToggle.addEventListener('click', function () {
      setMenu(mobileMenu.hidden);
    });
    mobileMenu.querySelectorAll('a').forEach(function (link) {
      link.addEventListener('click', function () { setMenu(false); });
    });
  }

  // ---- Theme ----
  var themeToggle = document.getElementById('theme-toggle');
  var stored = null;
  try { stored = localStorage.getItem('theme'); } catch (e) {}
  if (stored === 'dark' || stored === 'light') {
    root.className = stored;
  }
  if (themeToggle) {
    themeToggle.addEventListener('click', function () {
      var next = root.classList.contains('dark') ? 'light' : 'dark';
      root.className = next;
      try { localStorage.setItem('theme', next); } catch (e) {}
    });
  }

  // ---- Contact form ----
  var form = document.getElementById('contact-form');
  var status = document.getElementById('form-status');

  function setStatus(kind, text) {
    status.className = 'form-status' + (kind ? ' ' + kind : '');
    status.textContent = text;
  }

  if (form) {
    form.addEventListener('submit', function (event) {
      event.preventDefault();
      var payload = {
        name: form.elements.name.value.trim(),
        email: form.elements.email.value.trim(),
        message: form.elements.message.value.trim()
      };
      if (!payload.name || !payload.email || !payload.message) {
        setStatus('error', 'Please fill in all fields.');
        return;
      }

      var button = form.querySelector('button[type="submit"]');
      button.disabled = true;
      setStatus('', 'Sending...');

      fetch(form.getAttribute('action'), {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify(payload)
      }).then(function (res) {
        return res.json().then(function (data) {
          if (!res.ok) {
            throw new Error(data.error || 'Failed to send message');
          }
          setStatus('success', data.message);
          form.reset();
        });
      }).catch(function (err) {
        setStatus('error', err.message || 'Failed to send message');
      }).then(function () {
        button.disabled = false;
      });
    });
  }

  // ---- Live reload ----
  var reloadPath = body.getAttribute('data-livereload');
  if (reloadPath && window.WebSocket) {
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    var socket = new WebSocket(scheme + location.host + reloadPath);
    socket.addEventListener('message', function (event) {
      if (event.data === 'reload') {
        location.reload();
      }
    });
  }
})();
`
