package spectate

// indexPage draws frames from /ws onto a block grid
const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>vi-snake</title>
<style>
body { background: #1a1b26; color: #c0caf5; font-family: monospace; margin: 2em; }
#hud span { margin-right: 2em; }
#board { display: grid; gap: 1px; margin-top: 1em; background: #1a1b26; border: 1px solid #5a5a6e; width: max-content; }
.block { width: 14px; height: 14px; background: #24283b; }
.block.fill { background: #00c800; }
.block.head { background: #32ff32; }
.block.food { background: #ff5050; border-radius: 50%; }
.over .block.fill, .over .block.head { background: #b43232; }
#banner { margin-top: 1em; min-height: 1.2em; color: #ff7878; }
</style>
</head>
<body>
<div id="hud"><span>Score <b id="score">00</b></span><span>High <b id="high">00</b></span><span>Time <b id="time">00:00</b></span></div>
<div id="board"></div>
<div id="banner"></div>
<script>
const board = document.getElementById("board");
let blocks = [];
let rows = 0, cols = 0;

function layout(r, c) {
  rows = r; cols = c;
  board.innerHTML = "";
  board.style.gridTemplateColumns = "repeat(" + c + ", 14px)";
  blocks = [];
  for (let i = 0; i < r * c; i++) {
    const b = document.createElement("div");
    b.className = "block";
    board.appendChild(b);
    blocks.push(b);
  }
}

function draw(f) {
  if (f.rows !== rows || f.cols !== cols) layout(f.rows, f.cols);
  for (const b of blocks) b.className = "block";
  f.snake.forEach((p, i) => {
    const b = blocks[p.row * cols + p.col];
    if (b) b.classList.add(i === 0 ? "head" : "fill");
  });
  const food = blocks[f.food.row * cols + f.food.col];
  if (food) food.classList.add("food");
  board.classList.toggle("over", f.phase === "game_over");
  document.getElementById("score").textContent = f.score;
  document.getElementById("high").textContent = f.highScore;
  document.getElementById("time").textContent = f.elapsed;
  let banner = "";
  if (f.phase === "idle") banner = "waiting for the player to start";
  if (f.phase === "game_over") banner = "GAME OVER (" + f.collision + ")";
  document.getElementById("banner").textContent = banner;
}

function connect() {
  const ws = new WebSocket((location.protocol === "https:" ? "wss://" : "ws://") + location.host + "/ws");
  ws.onmessage = (ev) => draw(JSON.parse(ev.data));
  ws.onclose = () => setTimeout(connect, 1000);
}
connect();
</script>
</body>
</html>
`
